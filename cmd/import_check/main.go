package main

import (
	"fmt"
	"log"
	"os"

	"careerquest/internal/service"
)

// Valida una planilla de estudiantes sin persistir nada: imprime las filas
// parseadas y los errores que la API reportaria en /students/import.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "uso: %s <planilla.xlsx|csv>\n", os.Args[0])
		os.Exit(2)
	}
	path := os.Args[1]

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("abrir archivo: %v", err)
	}
	defer f.Close()

	preview, err := service.ParseStudentFile(path, f)
	if err != nil {
		log.Fatalf("parsear: %v", err)
	}

	fmt.Printf("%d filas parseadas\n", len(preview.Students))
	for i, s := range preview.Students {
		fmt.Printf("  [%d] %s <%s> clase %s seccion %s (%s)\n",
			i+1, s.Name, s.Email, s.Class, s.Section, s.AgeGroup)
	}

	if preview.TotalErrors == 0 {
		fmt.Println("Sin errores.")
		return
	}
	fmt.Printf("\n%d errores:\n", preview.TotalErrors)
	for _, msg := range preview.RowErrors {
		fmt.Printf("  %s\n", msg)
	}
	os.Exit(1)
}
