// Profiling:
// go build ./profile/grow
// ./grow -config grow.yaml
// go tool pprof -http=":8000" -nodefraction=0.001 ./grow mem.pprof

package main

import (
	"flag"
	"log"
	"os"

	"github.com/edwinsyarief/retsu"
	"github.com/pkg/profile"
)

type position struct {
	X float64
	Y float64
}

type velocity struct {
	X float64
	Y float64
}

func main() {
	config := flag.String("config", "", "YAML container config")
	flag.Parse()

	opts, initial := loadOptions(*config)
	rounds := 50
	iters := 1000
	elements := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(rounds, iters, elements, initial, opts); err != nil {
		log.Fatal(err)
	}
	p.Stop()
}

func loadOptions(path string) ([]retsu.Option, int) {
	if path == "" {
		return nil, 0
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	c, err := retsu.LoadConfig(f)
	if err != nil {
		log.Fatal(err)
	}
	opts, err := c.Options()
	if err != nil {
		log.Fatal(err)
	}
	return opts, c.InitialCapacity
}

func run(rounds, iters, numElements, initial int, opts []retsu.Option) error {
	for range rounds {
		a := retsu.MakeArray3[position, velocity, string](opts...)
		if err := a.Reserve(initial); err != nil {
			return err
		}
		for range iters {
			for i := range numElements {
				if err := a.PushBack(position{}, velocity{X: float64(i)}, "p"); err != nil {
					return err
				}
			}
			if _, err := a.Insert(a.Len()/2, numElements/10, position{}, velocity{}, "mid"); err != nil {
				return err
			}
			a.EraseRange(0, a.Len()/2)
			a.Clear()
		}
		a.Release()
	}
	return nil
}
