// Command example renders a small task board: a board view composing a
// header child and a task-list child, with the header bound to a model
// attribute and the tasks loaded from a bolt-backed store.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmorton/chassis"
	"github.com/pmorton/chassis/lib/model"
	"github.com/pmorton/chassis/lib/store"
)

var headerClass = func() *chassis.Class {
	c := chassis.NewClass("header")
	c.Template = chassis.MustHTMLTemplate("header",
		`<h1 data-bind="title">{{.title}}</h1>`)
	return c
}()

var taskListClass = func() *chassis.Class {
	c := chassis.NewClass("tasklist")
	c.Template = chassis.MustHTMLTemplate("tasklist", `<ul>
{{- range .models}}
  <li>{{.title}}</li>
{{- end}}
</ul>`)
	return c
}()

var boardClass = func() *chassis.Class {
	c := chassis.NewClass("board").
		DeclareChild("header", ".board-header").
		DeclareChild("tasks", ".board-tasks")
	c.Template = chassis.MustHTMLTemplate("board",
		`<div class="board-header"></div><div class="board-tasks"></div>`)
	return c
}()

func run() error {
	path := filepath.Join(os.TempDir(), "chassis-example.db")
	defer os.Remove(path)

	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	seed := []map[string]any{
		{"id": "1", "title": "write templates"},
		{"id": "2", "title": "declare children"},
	}
	for _, attrs := range seed {
		if err := db.Save("tasks", model.New(attrs)); err != nil {
			return err
		}
	}

	tasks, err := db.LoadAll("tasks")
	if err != nil {
		return err
	}

	board := model.New(map[string]any{"title": "Today"})

	header := chassis.New(headerClass, map[string]any{"model": board})
	list := chassis.New(taskListClass, map[string]any{"collection": tasks})

	view := chassis.New(boardClass, map[string]any{
		"header": header,
		"tasks":  list,
	}).Render()

	fmt.Println("initial render:")
	fmt.Println(view.Root().HTML())

	// One-way binding: changing the model updates the rendered header.
	board.Set("title", "Tomorrow")
	fmt.Println("after title change:")
	fmt.Println(view.Root().HTML())

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
