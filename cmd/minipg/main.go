package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/minipg/minipg/catalog"
	"github.com/minipg/minipg/executor"
	"github.com/minipg/minipg/output"
	"github.com/minipg/minipg/plan"
	"github.com/minipg/minipg/server"
	"github.com/minipg/minipg/token"
)

var (
	queryFlag  = flag.String("q", "", "SQL query (e.g., \"select * from users where age = 30\")")
	formatFlag = flag.String("f", "jsonl", "Output format: jsonl, csv, table")
	dataFlag   = flag.String("data", "./data", "Directory holding one record file per table")
	extFlag    = flag.String("ext", catalog.DefaultExtension, "Table file extension: .jsonl, .csv, .parquet")
	planFlag   = flag.Bool("plan", false, "Print the compiled plan instead of executing it")
	serveFlag  = flag.String("serve", "", "Serve the HTTP query endpoint on this address (e.g. :5433)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A planner and executor for SELECT queries over file-backed tables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -q \"select * from users\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -data /data/json_db -q \"select name, age from users where age = 30\" -f table\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"select * from users\" -plan\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve :5433\n", os.Args[0])
	}

	flag.Parse()

	if *serveFlag != "" {
		serve()
		return
	}

	if *queryFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: missing query\n\n")
		flag.Usage()
		os.Exit(1)
	}

	root, err := token.Parse(*queryFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing query: %v\n", err)
		os.Exit(1)
	}

	resolver, err := catalog.NewResolver(catalog.Config{DataDir: *dataFlag, Extension: *extFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := plan.Build(root, resolver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning query: %v\n", err)
		os.Exit(1)
	}

	if *planFlag {
		data, err := plan.Marshal(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	rows, err := executor.Execute(p)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: table file for %q not found under %s\n", p.Source.LogicalName, *dataFlag)
		} else {
			fmt.Fprintf(os.Stderr, "Error executing query: %v\n", err)
		}
		os.Exit(1)
	}

	formatter, err := output.New(*formatFlag, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if err := formatter.Format(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

func serve() {
	logger := log.New(os.Stderr, "minipg: ", log.LstdFlags)
	srv, err := server.New(server.Config{DataDir: *dataFlag, Extension: *extFlag}, logger)
	if err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
	logger.Printf("serving on %s (data dir %s)", *serveFlag, *dataFlag)
	if err := http.ListenAndServe(*serveFlag, srv.Handler()); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
