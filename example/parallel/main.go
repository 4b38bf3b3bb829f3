package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	heredity "github.com/JosephLambon/Heredity"
	"github.com/carbocation/pfx"
)

// weightedScenario pairs a scenario with its joint probability so the
// accumulator can apply the matching update.
type weightedScenario struct {
	scenario heredity.Scenario
	p        float64
}

func main() {
	csvPath := flag.String("csv", "", "Filename of the pedigree CSV to process")
	flag.Parse()

	if *csvPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*csvPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*csvPath = filepath.Join(usr.HomeDir, (*csvPath)[2:])
	}

	ped, err := heredity.Open(*csvPath)
	if err != nil {
		log.Fatalln(err)
	}

	scenarios := make(chan heredity.Scenario)
	output := make(chan weightedScenario)
	confirmDone := make(chan struct{})

	// The joint-probability calls are pure and run in parallel; the
	// accumulator mutates shared state, so a single goroutine owns it
	// and serializes every Update.
	dist := heredity.NewDistributions(ped)
	go func() {
		for o := range output {
			if err := dist.Update(o.scenario, o.p); err != nil {
				log.Fatalln(err)
			}
		}
		close(confirmDone)
	}()

	log.Println("Launching", runtime.NumCPU(), "workers for", heredity.NumScenarios(ped), "scenarios")
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ped, scenarios, output)
		}()
	}

	err = heredity.ForEachScenario(ped, func(s heredity.Scenario) error {
		// The walk reuses its scenario, so each worker gets a copy.
		scenarios <- s.Clone()
		return nil
	})
	if err != nil {
		log.Fatalln(err)
	}
	close(scenarios)
	wg.Wait()
	close(output)
	<-confirmDone

	if err := dist.Normalize(); err != nil {
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

func worker(ped heredity.Pedigree, scenarios <-chan heredity.Scenario, output chan<- weightedScenario) {
	for s := range scenarios {
		p, err := heredity.JointProbability(ped, heredity.DefaultTables, s)
		if err != nil {
			log.Fatalln(err)
		}

		output <- weightedScenario{scenario: s, p: p}
	}
}
