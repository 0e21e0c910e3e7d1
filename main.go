package main

import (
	"vetcare-api/core/logger"
	"vetcare-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
