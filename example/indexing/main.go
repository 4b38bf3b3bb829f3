package main

import (
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
	csvPath := flag.String("csv", "", "Filename of the pedigree CSV to index")
	pdiPath := flag.String("pdi", "", "Filename of the pedigree index (.pdi) to create")
	flag.Parse()

	if *csvPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree CSV found")
	}
	*csvPath = expandHome(*csvPath)

	if *pdiPath == "" {
		*pdiPath = *csvPath + ".pdi"
	}
	*pdiPath = expandHome(*pdiPath)

	log.Println("Opening pedigree:", *csvPath)
	ped, err := heredity.Open(*csvPath)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Indexing", len(ped), "people into", *pdiPath, "using the", heredity.WhichSQLiteDriver(), "driver")
	if err := heredity.WritePDI(*pdiPath, ped, filepath.Base(*csvPath)); err != nil {
		log.Fatalln(err)
	}

	// Read the index back as a consistency check.
	idx, err := heredity.OpenPDI(*pdiPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer idx.Close()
	log.Printf("PDI Metadata: %+v\n", idx.Metadata)

	indexed, err := idx.Pedigree()
	if err != nil {
		log.Fatalln(err)
	}

	i := 0
	for _, name := range indexed.Names() {
		fmt.Println(i, name)
		i++

		if i > 10 {
			break
		}
	}
	log.Println("Saw indexes for", len(indexed), "people")

	if len(indexed) != len(ped) {
		log.Fatalln(pfx.Err(fmt.Errorf("indexed %d people but the CSV holds %d", len(indexed), len(ped))))
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
