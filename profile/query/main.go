// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/sparsehall/stockpile"
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

func main() {
	rounds := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		ecs := stockpile.New()
		stockpile.RegisterComponent[comp1](ecs)
		stockpile.RegisterComponent[comp2](ecs)
		stockpile.RegisterComponent[comp3](ecs)

		for i := 0; i < numEntities; i++ {
			e := ecs.CreateEntity()
			stockpile.AddComponent[comp1](ecs, e)
			if i%2 == 0 {
				stockpile.AddComponent[comp2](ecs, e)
			}
			if i%16 == 0 {
				stockpile.AddComponent[comp3](ecs, e)
			}
		}

		c1 := stockpile.TypeOf[comp1]()
		c2 := stockpile.TypeOf[comp2]()
		c3 := stockpile.TypeOf[comp3]()
		pool1, _ := stockpile.PoolOf[comp1](ecs)
		pool2, _ := stockpile.PoolOf[comp2](ecs)

		for it := 0; it < iters; it++ {
			matched, _ := ecs.AllOf(c1, c2, c3)
			for _, e := range matched {
				pool1.Get(e).V += pool2.Get(e).V
			}
		}
	}
}
