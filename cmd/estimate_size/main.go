package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/persist"
	"github.com/td0m/vacation/pkg/plan"
)

var (
	years  = flag.Int("years", 10, "Years of history per layer")
	layers = flag.Int("layers", 20, "Number of layers")
)

// estimate_size measures how large the planner document gets and how long
// it takes to save and load, for a heavily used planner.
func main() {
	flag.Parse()

	dir, err := os.MkdirTemp("", "vacation")
	check(err)
	defer os.RemoveAll(dir)

	store := persist.New(persist.InDir(dir), "", nil)
	doc := plan.NewDocument()
	r := plan.NewRegistry(doc.Layers...)
	start := calendar.New(time.Now().Year()-*years, time.January, 1)
	total := 0
	for i := 0; i < *layers; i++ {
		l, err := r.Create(fmt.Sprintf("layer %d", i), "#3b82f6")
		check(err)
		for d := start; d.Year < start.Year+*years; d = d.AddDays(1) {
			r.Toggle(l.ID, d.ISO(), true)
			total++
		}
	}
	doc.Layers = r.Layers()

	writeTime := measureTime(func() {
		check(store.Save(doc))
	})

	readTime := measureTime(func() {
		store.Load()
	})

	info, err := os.Stat(filepath.Join(dir, persist.DefaultKey+".json"))
	check(err)
	fmt.Printf("Layers: %d, %d years each (%d dates total)\n", *layers, *years, total)
	fmt.Printf("File size: %dKB\n", info.Size()/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
