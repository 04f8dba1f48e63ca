package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"smartassist-bot/handler"
	"smartassist-bot/internal/bot"
	appconfig "smartassist-bot/internal/config"
	"smartassist-bot/internal/connector"
	"smartassist-bot/internal/repository"
	"smartassist-bot/pkg/logger"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg := appconfig.Load()

	var (
		log *logger.Logger
		err error
	)
	if cfg.Development() {
		log, err = logger.NewDevelopment()
	} else {
		log, err = logger.New(cfg.LogLevel)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// ---- AWS SDK config ----
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal("failed to load AWS config", zap.Error(err))
	}

	// ---- Clients ----
	stateClient, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.StateTable, repository.WithTTL(cfg.StateTTL))
	if err != nil {
		log.Fatal("failed to create state client", zap.Error(err))
	}

	tokens, err := connector.NewParamStoreToken(awsssm.NewFromConfig(awsCfg), cfg.ParamPrefix)
	if err != nil {
		log.Fatal("failed to create connector token source", zap.Error(err))
	}
	connectorClient := connector.NewClient(
		connector.WithTokenSource(tokens),
		connector.WithTimeout(cfg.ConnectorTimeout),
	)

	// ---- Handler ----
	dispatcher, err := bot.NewDispatcher(stateClient, connectorClient, bot.SmartAssist{}, log)
	if err != nil {
		log.Fatal("failed to create dispatcher", zap.Error(err))
	}

	h, err := handler.NewHandler(dispatcher, log)
	if err != nil {
		log.Fatal("failed to create handler", zap.Error(err))
	}

	log.Info("starting lambda", zap.String("state_table", cfg.StateTable))
	lambda.Start(h.Handle)
}
