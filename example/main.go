package main

import (
	"fmt"

	"github.com/nicolasmmb/envspec"
)

func main() {
	env, err := envspec.Load(envspec.Fields{
		"PORT":         envspec.Int(envspec.IsGreaterThan(0)).WithDefault("8080"),
		"HOST":         envspec.String().WithDefault("0.0.0.0"),
		"DEBUG":        envspec.Bool().WithDefault("0"),
		"DATABASE_URL": envspec.String(envspec.Length(1)),
	})
	if err != nil {
		panic(err)
	}

	env.Print()

	host, _ := envspec.Lookup[string](env, "HOST")
	port, _ := envspec.Lookup[int](env, "PORT")
	fmt.Printf("\nServer starting on %s:%d\n", host, port)
}
