package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/internal/config"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/clients/solverclient"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Solver   *solverclient.Client
	Logger   *zap.Logger
	Ctx      context.Context
}
