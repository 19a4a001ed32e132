package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/nicholasngai/wordgame/internal/config"
	"github.com/nicholasngai/wordgame/internal/game"
	"github.com/nicholasngai/wordgame/internal/i18n"
	"github.com/nicholasngai/wordgame/internal/reply"
)

var log = logrus.New()

func main() {
	var err error

	var authToken string
	var envFile string
	flag.StringVar(&authToken, "auth", "", "Authentication token for the Discord bot (overrides DISCORD_TOKEN)")
	flag.StringVar(&envFile, "env", ".env", "Optional .env file to load")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatalln("Error loading configuration:", err)
	}
	if authToken != "" {
		cfg.Token = authToken
	}
	if err := cfg.Validate(); err != nil {
		log.Errorln("Invalid configuration:", err)
		flag.Usage()
		os.Exit(1)
	}
	log.SetLevel(cfg.Level())

	// Construct session.
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalln("Error creating discordgo instance:", err)
	}
	s.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages)

	// Look up owners for owner-only commands.
	owners := make(map[string]bool)
	app, err := s.Application("@me")
	if err != nil {
		log.Warnln("Error fetching application info, owner commands disabled:", err)
	} else if app.Owner != nil {
		owners[app.Owner.ID] = true
	}

	client := discordClient{s: s}
	quit := make(chan struct{})
	b := newBot(botConfig{
		prefix:    cfg.Prefix,
		joinEmoji: cfg.JoinEmoji,
		owners:    owners,
	},
		game.NewStore(cfg.JoinEmoji, log),
		client,
		reply.NewRenderer(i18n.Printer(cfg.Language), client, reply.Options{
			Prefix:    cfg.Prefix,
			JoinEmoji: cfg.JoinEmoji,
		}, log),
		i18n.Printer(cfg.Language),
		func() { close(quit) },
	)

	// Add handlers.
	s.AddHandler(handleReady)
	s.AddHandler(handleResumed)
	s.AddHandler(b.handleMessage)
	s.AddHandler(b.handleReactionAdd)
	s.AddHandler(b.handleReactionRemove)

	// Connect to Discord.
	err = s.Open()
	if err != nil {
		log.Fatalln("Error connecting to Discord:", err)
	}
	defer s.Close()
	log.Println("Bot started successfully")

	// Wait for interrupt or quit command.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
	case <-quit:
	}
	log.Println("Terminating gracefully")
}

func handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithField("user", r.User.Username).Infoln("Connected")
}

func handleResumed(s *discordgo.Session, r *discordgo.Resumed) {
	log.Infoln("Resumed")
}
