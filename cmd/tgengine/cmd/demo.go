package cmd

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/javacg/tgengine/internal/adapter"
	"github.com/javacg/tgengine/internal/adapter/adapterfixture"
	"github.com/javacg/tgengine/internal/config"
	"github.com/javacg/tgengine/internal/engine"
	"github.com/javacg/tgengine/internal/hierarchy"
	"github.com/javacg/tgengine/internal/typeinfo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a small class hierarchy and print resolved TypeInfo values",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	oracle := hierarchy.NewInMemory()
	registerDemoHierarchy(oracle)

	specs := adapterfixture.NewLibrarySpec()
	specs.Register("List", "java.util", adapter.LibrarySpecRecord{
		Package: "java.util", DeclaringType: "List", MethodName: "get", ReturnType: typeinfo.LibraryHash("java.lang.Object"), ReturnArity: 1,
	})

	eng := engine.New(adapterfixture.New(), oracle, specs, cfg)

	dog := &typeinfo.Class{Hash: "demo.Dog"}
	animal := &typeinfo.Class{Hash: "demo.Animal"}
	listOfDog := &typeinfo.Parameterized{
		RawClassHash: typeinfo.LibraryHash("java.util.List"),
		Arity:        1,
		Arguments:    []typeinfo.TypeInfo{dog},
	}

	names := []string{}
	for _, t := range []typeinfo.TypeInfo{dog, animal, listOfDog} {
		canonical, idx := eng.Intern.PutOrGet(t)
		names = append(names, fmt.Sprintf("[%d] %s", idx, canonical.String()))
	}
	sort.Sort(natural.StringSlice(names))
	for _, n := range names {
		fmt.Println(n)
	}

	stats := eng.Stats()
	fmt.Printf("intern table: %d entries, %d puts, %d new\n", stats.Size, stats.Puts, stats.NewEntries)
	return nil
}

func registerDemoHierarchy(oracle *hierarchy.InMemory) {
	oracle.Register(&hierarchy.Entry{Hash: "demo.Object", ShortName: "Object"})
	oracle.Register(&hierarchy.Entry{Hash: "demo.Animal", ShortName: "Animal", Superclass: "demo.Object"})
	oracle.Register(&hierarchy.Entry{Hash: "demo.Dog", ShortName: "Dog", Superclass: "demo.Animal"})
}
