package main

import (
	"hotie/config"
	"hotie/helper"
	"hotie/shared/logger"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

var actions = []string{helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop}

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	action := os.Args[1]
	if !slices.Contains(actions, action) {
		log.Fatal().Str("action", action).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err := helper.Run(config.Get(), action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}
