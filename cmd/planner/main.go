// planner herramienta de operación: migraciones, proyecciones puntuales y el lote
// diario de ejecución de órdenes programadas.
//
// Uso:
//
//	planner migrate
//	planner project --stock-point 2 --horizon 30 [--as-of 2024-03-01] [--pdf out.pdf] [--demo]
//	planner execute-scheduled [--day 2024-03-03] [--demo]
//	planner token --role planner [--user ops]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(1)
	}
}
