// foodctl — служебные команды: проверка заявок, геокодирование, миграции, менеджеры.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
