// Profiling:
// go build ./profile/iterate
// ./iterate -config iterate.yaml
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate cpu.pprof

package main

import (
	"flag"
	"log"
	"os"

	"github.com/edwinsyarief/retsu"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	config := flag.String("config", "", "YAML container config")
	flag.Parse()

	var opts []retsu.Option
	if *config != "" {
		f, err := os.Open(*config)
		if err != nil {
			log.Fatal(err)
		}
		c, err := retsu.LoadConfig(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		if opts, err = c.Options(); err != nil {
			log.Fatal(err)
		}
	}

	rounds := 50
	iters := 1000
	elements := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(rounds, iters, elements, opts); err != nil {
		log.Fatal(err)
	}
	p.Stop()
}

func run(rounds, iters, numElements int, opts []retsu.Option) error {
	for range rounds {
		a, err := retsu.NewArray6[comp1, comp2, comp3, comp4, comp5, comp6](numElements, opts...)
		if err != nil {
			return err
		}
		// Two of six fields: the other four buffers are never touched.
		v := retsu.Select2[comp1, comp6](a)
		for range iters {
			for i := range v.Len() {
				c1, c6 := v.Get(i)
				c1.V += c6.V
				c1.W += c6.W
			}
		}
		a.Release()
	}
	return nil
}
