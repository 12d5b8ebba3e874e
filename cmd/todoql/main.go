package main

import "github.com/cleitonmarx/todoql/internal/app"

func main() {
	err := app.NewTodoApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
