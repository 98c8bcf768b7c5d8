package main

import (
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "donation-service"
	app.Usage = "Food bank donations, emergencies and rewards API"
	app.Action = startServer
	app.Commands = []*cli.Command{
		{
			Action:      startServer,
			Name:        "serve",
			Usage:       "Start the HTTP API",
			Category:    "Api",
			Description: `Starts the JSON API. This is also what runs when no command is given.`,
		},
		{
			Action:      startMigrate,
			Name:        "migrate",
			Usage:       "Create the SQL schema",
			Category:    "Database",
			Description: `Creates the rewards and points tables on database.driver and optionally loads the seed data.`,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "seed",
					Usage: "load the default rewards, points and leaderboard data",
				},
			},
		},
	}
	return app
}
