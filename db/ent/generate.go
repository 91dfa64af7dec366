package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/pavel-marchuk/order-finder/gen/ent",
			Schema:  "ent/schema",
		},
		// row locks for the worker claim (SELECT ... FOR UPDATE SKIP LOCKED)
		entc.FeatureNames("sql/lock"),
	)
	if err != nil {
		log.Fatal(err)
	}
}
