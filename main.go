package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lingochat/lingochat/config"
	"github.com/lingochat/lingochat/database"
	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/util/common"
	"github.com/lingochat/lingochat/util/crypto"
	"github.com/lingochat/lingochat/web"
	"github.com/lingochat/lingochat/web/service"

	"github.com/spf13/cobra"
)

func initLogger() {
	level, err := logger.ParseLevel(config.GetLogLevel())
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(level)
}

func startServer() (*web.Server, error) {
	opts, err := web.DefaultOptions()
	if err != nil {
		return nil, err
	}
	server := web.NewServer(opts)
	return server, server.Start()
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())
	initLogger()
	defer logger.CloseLogger()

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close db err:", err)
		}
	}()

	server, err := startServer()
	if err != nil {
		logger.Error("start server err:", err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("received SIGHUP, restarting web server")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server, err = startServer()
			if err != nil {
				logger.Error("restart server err:", err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func migrateDb() error {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		return err
	}
	return database.CloseDB()
}

func addUser(username, password string) (err error) {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		return err
	}
	defer func() {
		err = common.Combine(err, database.CloseDB())
	}()

	userService := service.NewUserService(database.GetDB(), crypto.BcryptHasher{})
	user, err := userService.Register(username, password)
	if err != nil {
		return err
	}
	fmt.Printf("user %s created with id %d\n", user.Username, user.Id)
	return nil
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "load .env failed:", err)
	}

	var rootCmd = &cobra.Command{
		Use:   config.GetName(),
		Short: "Multilingual chat web interface",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run: func(cmd *cobra.Command, args []string) {
			if err := migrateDb(); err != nil {
				fmt.Println("migrate failed:", err)
				return
			}
			fmt.Println("migrate success:", config.GetDBPath())
		},
	}

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var addCmd = &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if err := addUser(username, password); err != nil {
				fmt.Println("add user failed:", err)
			}
		},
	}
	addCmd.Flags().String("username", "", "login username")
	addCmd.Flags().String("password", "", "login password")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	userCmd.AddCommand(addCmd)
	rootCmd.AddCommand(runCmd, migrateCmd, userCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
