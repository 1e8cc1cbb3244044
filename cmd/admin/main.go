package main

import (
	"context"
	"os"
	"time"

	"mddrc-backend/config"
	"mddrc-backend/database"
	"mddrc-backend/internal/logsvc"
	"mddrc-backend/internal/repository"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/utils"
)

func main() {
	lg := logsvc.NewStdLogger(logsvc.NewStd("ADMIN : "), false)

	cfg, err := config.LoadConfig()
	if err != nil {
		lg.Fatal("config", err)
	}
	if cfg.Storage != config.StorageMongo {
		lg.Fatal("the admin tool needs STORAGE=mongo")
	}

	client, db, err := database.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		lg.Fatal("connect mongo", err)
	}
	defer database.Disconnect(client)

	loc, _ := time.LoadLocation(cfg.Timezone)
	st := repository.NewStores(db)
	clock := utils.NewClock(loc)
	cli := commandLine{
		st:     st,
		clock:  clock,
		people: services.NewPeopleService(st, services.Options{Clock: clock, Log: lg}),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			lg.Error("admin command failed", err)
		}
		database.Disconnect(client)
		os.Exit(1)
	}
}
