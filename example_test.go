package stockpile_test

import (
	"fmt"

	"github.com/sparsehall/stockpile"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic stockpile usage with entity creation and queries
func Example_basic() {
	ecs := stockpile.New()
	stockpile.RegisterComponent[Position](ecs)
	stockpile.RegisterComponent[Velocity](ecs)
	stockpile.RegisterComponent[Name](ecs)

	// Entities with position only
	for i := 0; i < 5; i++ {
		e := ecs.CreateEntity()
		stockpile.AddComponent[Position](ecs, e)
	}

	// Entities with position and velocity
	for i := 0; i < 3; i++ {
		e := ecs.CreateEntity()
		stockpile.AddComponent[Position](ecs, e)
		stockpile.AddComponent[Velocity](ecs, e)
	}

	// One named entity
	player := ecs.CreateEntity()
	pos, _ := stockpile.AddComponent[Position](ecs, player)
	vel, _ := stockpile.AddComponent[Velocity](ecs, player)
	name, _ := stockpile.AddComponent[Name](ecs, player)
	pos.X, pos.Y = 10.0, 20.0
	vel.X, vel.Y = 1.0, 2.0
	name.Value = "Player"

	// Query for all entities with position and velocity
	movers, _ := ecs.AllOf(stockpile.TypeOf[Position](), stockpile.TypeOf[Velocity]())
	fmt.Printf("Found %d entities with position and velocity\n", len(movers))

	// Process just the named entities
	named, _ := ecs.AllOf(stockpile.TypeOf[Name]())
	for _, e := range named {
		pos, _ := stockpile.GetComponent[Position](ecs, e)
		vel, _ := stockpile.GetComponent[Velocity](ecs, e)
		nme, _ := stockpile.GetComponent[Name](ecs, e)

		pos.X += vel.X
		pos.Y += vel.Y
		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_systems shows scheduler-driven updates with a tick-gated system
func Example_systems() {
	ecs := stockpile.New()
	stockpile.RegisterComponent[Position](ecs)
	stockpile.RegisterComponent[Velocity](ecs)

	e := ecs.CreateEntity()
	pos, _ := stockpile.AddComponent[Position](ecs, e)
	vel, _ := stockpile.AddComponent[Velocity](ecs, e)
	pos.X = 0
	vel.X = 1

	// Movement runs every pass; a slower system runs every third pass
	ecs.AddSystem(stockpile.SystemFunc(func(ecs *stockpile.ECS, _ stockpile.SystemID, _ uint32) {
		movers, _ := ecs.AllOf(stockpile.TypeOf[Position](), stockpile.TypeOf[Velocity]())
		for _, e := range movers {
			pos, _ := stockpile.GetComponent[Position](ecs, e)
			vel, _ := stockpile.GetComponent[Velocity](ecs, e)
			pos.X += vel.X
		}
	}), 1)
	ecs.AddSystem(stockpile.SystemFunc(func(ecs *stockpile.ECS, _ stockpile.SystemID, _ uint32) {
		pos, _ := stockpile.GetComponent[Position](ecs, e)
		fmt.Printf("checkpoint at x=%.0f\n", pos.X)
	}), 3)

	for i := 0; i < 6; i++ {
		ecs.Update(16)
	}

	// Output:
	// checkpoint at x=3
	// checkpoint at x=6
}
