package main

import (
	"os"
	"reflect"
	"strings"

	"github.com/donestate/estated/core"
	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/donestate/estated/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.TransactionType]())
	g.AddDefinedType(reflect.TypeFor[core.PropertyKind]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.Property](),
		structops.WithField(),     // MessageID
		structops.WithField(),     // ChannelID
		structops.WithField(opts), // PostedAt
		structops.WithField(),     // Transaction
		structops.WithField(),     // Kind
		structops.WithField(),     // Rooms
		structops.WithField(),     // AreaSqm
		structops.WithField(),     // Floor
		structops.WithField(),     // PriceUSD
		structops.WithField(),     // Address
		structops.WithField(),     // Latitude
		structops.WithField(),     // Longitude
		structops.WithField(),     // Geocoded
		structops.WithField(),     // Description
		structops.WithField(),     // RawText
		structops.WithField(),     // Vector
		structops.WithField(),     // MediaPaths
		structops.WithField(),     // VideoPath
		structops.WithField(),     // Views
		structops.WithField(),     // Active
		structops.WithField(opts), // InsertedAt
		structops.WithField(opts)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
