// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

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

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		ecs := stockpile.New()
		stockpile.RegisterComponent[comp1](ecs)
		stockpile.RegisterComponent[comp2](ecs)

		for it := 0; it < iters; it++ {
			ids := make([]stockpile.EntityID, 0, numEntities)
			for n := 0; n < numEntities; n++ {
				e := ecs.CreateEntity()
				ids = append(ids, e)
				c1, _ := stockpile.AddComponent[comp1](ecs, e)
				c2, _ := stockpile.AddComponent[comp2](ecs, e)
				c1.V = 1
				c2.V = 2
			}
			matched, _ := ecs.AllOf(stockpile.TypeOf[comp1](), stockpile.TypeOf[comp2]())
			for _, e := range matched {
				c1, _ := stockpile.GetComponent[comp1](ecs, e)
				c2, _ := stockpile.GetComponent[comp2](ecs, e)
				c1.V += c2.V
				c1.W += c2.W
			}
			for _, e := range ids {
				ecs.DeleteEntity(e)
			}
		}
	}
}
