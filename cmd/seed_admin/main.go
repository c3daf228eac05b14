package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"careerquest/internal/config"
	"careerquest/internal/db"
	"careerquest/internal/repository"
	"careerquest/internal/service"
)

// Crea una cuenta de counselor desde la terminal, para el primer arranque de
// una instalacion nueva.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	userSvc := service.NewUserService(logger, repository.NewPgUserRepository(pool))

	email := prompt(reader, "Email: ")
	displayName := prompt(reader, "Nombre para mostrar: ")
	password := prompt(reader, "Password: ")

	user, err := userSvc.Register(ctx, service.RegisterInput{
		Email:       email,
		DisplayName: displayName,
		Password:    password,
	})
	if err != nil {
		log.Fatalf("crear cuenta: %v", err)
	}
	fmt.Printf("Cuenta creada: %s (%s)\n", user.Email, user.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
