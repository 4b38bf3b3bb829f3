package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	heredity "github.com/JosephLambon/Heredity"
	"github.com/carbocation/pfx"
)

func main() {
	csvPath := flag.String("csv", "", "Filename of the pedigree CSV to process (may be .gz, .zst, or a gs:// URL)")
	pdiPath := flag.String("pdi", "", "Filename of a pedigree index (.pdi) to process instead of a CSV")
	flag.Parse()

	if *csvPath == "" && *pdiPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	var ped heredity.Pedigree
	var err error

	switch {
	case *pdiPath != "":
		idx, err := heredity.OpenPDI(expandHome(*pdiPath))
		if err != nil {
			log.Fatalln(err)
		}
		defer idx.Close()
		log.Printf("PDI Metadata: %+v\n", idx.Metadata)

		ped, err = idx.Pedigree()
		if err != nil {
			log.Fatalln(err)
		}

	case strings.HasPrefix(*csvPath, "gs://"):
		ped, err = heredity.OpenGoogleStorage(context.Background(), *csvPath)
		if err != nil {
			log.Fatalln(err)
		}

	default:
		ped, err = heredity.Open(expandHome(*csvPath))
		if err != nil {
			log.Fatalln(err)
		}
	}

	log.Println("Loaded", len(ped), "people; enumerating", heredity.NumScenarios(ped), "scenarios")

	dist, err := heredity.Infer(ped, heredity.DefaultTables)
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range ped.Names() {
		pd := dist[name]
		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for g := 2; g >= 0; g-- {
			fmt.Printf("    %d: %.4f\n", g, pd.Gene[g])
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", pd.Trait[1])
		fmt.Printf("    False: %.4f\n", pd.Trait[0])
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	return filepath.Join(usr.HomeDir, path[2:])
}
