package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	pb "github.com/jmcardle/pickwheel/gen/picker"
	"github.com/jmcardle/pickwheel/internal/service"
	"github.com/jmcardle/pickwheel/internal/state"
	"google.golang.org/grpc"
)

// #region main

func main() {
	dbPath := flag.String("db", "pickwheel.db", "path to pickwheel.db")
	addr := flag.String("addr", "localhost:50061", "listen address")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: pickerd --db path/to/pickwheel.db [--addr host:port]")
		os.Exit(2)
	}

	store, err := state.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", *addr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterPickerServiceServer(srv, service.NewPickerServer(store))

	fmt.Printf("pickerd ready.\n  DB: %s | Addr: %s\n", *dbPath, *addr)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main
