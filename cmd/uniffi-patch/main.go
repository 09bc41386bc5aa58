package main

import (
	"context"
	"fmt"
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/viant/mcp-protocol/schema"
	mcpsrv "github.com/viant/mcp/server"

	"github.com/viant/uniffi-patch/mcp"
	"github.com/viant/uniffi-patch/service"
)

// Options defines CLI flags for the UniFFI Swift vtable patcher.
type Options struct {
	HTTPAddr string `short:"a" long:"addr" description:"HTTP listen address; when set, serve the patch tools over MCP instead of patching once"`
	DryRun   bool   `short:"n" long:"dry-run" description:"report the patch count without writing the file"`
	UseData  bool   `long:"use-data" description:"return MCP tool results in the data field instead of text"`
	Args     struct {
		SwiftFile string `positional-arg-name:"swift-file" description:"path to the generated walletkit.swift"`
	} `positional-args:"yes"`
}

func main() {

	var opts Options
	rest, err := flags.NewParser(&opts, flags.Default).Parse()
	if err != nil {
		os.Exit(2)
	}
	if len(rest) > 0 {
		log.Fatalf("unexpected arguments: %v", rest)
	}

	svc := service.NewService(&service.Config{DryRun: opts.DryRun, UseData: opts.UseData})

	if opts.HTTPAddr != "" {
		serve(svc, opts.HTTPAddr)
		return
	}

	if opts.Args.SwiftFile == "" {
		log.Fatal("missing swift-file argument")
	}
	out, err := svc.PatchFile(context.Background(), &service.PatchFileInput{Location: opts.Args.SwiftFile})
	if err != nil {
		log.Fatal(err)
	}
	if out.DryRun {
		fmt.Printf("Would patch %d UniFFI callback interfaces in %s\n", out.Patched, out.Location)
		return
	}
	fmt.Printf("Patched %d UniFFI callback interfaces in %s\n", out.Patched, out.Location)
}

func serve(svc *service.Service, addr string) {
	server, err := mcpsrv.New(
		mcpsrv.WithImplementation(schema.Implementation{Name: "uniffi-patch", Version: "0.1.0"}),
		mcpsrv.WithNewHandler(mcp.NewHandler(svc)),
		mcpsrv.WithEndpointAddress(addr),
		mcpsrv.WithStreamableURI("/mcp"),
	)
	if err != nil {
		log.Fatal(err)
	}
	// Enable streamable HTTP so /mcp endpoint is active
	server.UseStreamableHTTP(true)
	if err := server.HTTP(context.Background(), addr).ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
