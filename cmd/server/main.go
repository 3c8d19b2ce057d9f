package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/vintaro/marketplace-service/internal/app/listing/queries"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/get_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/queries/search_listings"
	"github.com/vintaro/marketplace-service/internal/app/listing/repo"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/bulk_create_listings"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/create_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/record_view"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/set_listing_status"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/suggest_price"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/update_listing"
	"github.com/vintaro/marketplace-service/internal/app/messaging/send_message"
	"github.com/vintaro/marketplace-service/internal/app/order/checkout"
	"github.com/vintaro/marketplace-service/internal/app/wanted/create_wanted"
	"github.com/vintaro/marketplace-service/internal/app/wanted/list_wanted"
	"github.com/vintaro/marketplace-service/internal/pkg/aipricing"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/config"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
	grpcmarketplace "github.com/vintaro/marketplace-service/internal/transport/grpc/marketplace"
	marketplacev1 "github.com/vintaro/marketplace-service/proto/marketplace/v1"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := firestore.NewClient(ctx, cfg.FirestoreProject)
	if err != nil {
		logger.Fatal("firestore.NewClient", zap.Error(err))
	}
	defer client.Close()

	clk := clock.RealClock{}
	listingRepo := repo.NewListingRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := writeplan.NewAdapter(client)
	readModel := queries.NewFirestoreReadModel(client, logger)

	// Price suggestions stay off unless a Gemini key is configured.
	var pricing *suggest_price.Interactor
	if cfg.GeminiAPIKey != "" {
		pricer, err := aipricing.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Fatal("aipricing.NewClient", zap.Error(err))
		}
		defer pricer.Close()
		pricing = suggest_price.NewInteractor(readModel, pricer)
	}

	// CQRS wiring
	cmds := grpcmarketplace.Commands{
		Create:       create_listing.NewInteractor(listingRepo, outboxRepo, cm, clk),
		Update:       update_listing.NewInteractor(listingRepo, outboxRepo, cm, readModel, clk),
		SetStatus:    set_listing_status.NewInteractor(listingRepo, outboxRepo, cm, readModel, clk),
		RecordView:   record_view.NewInteractor(listingRepo, cm),
		BulkCreate:   bulk_create_listings.NewInteractor(client, clk, logger),
		Checkout:     checkout.NewInteractor(listingRepo, outboxRepo, cm, client, clk),
		SendMessage:  send_message.NewInteractor(readModel, cm, clk),
		SuggestPrice: pricing,
		CreateWanted: create_wanted.NewInteractor(cm, clk),
	}
	qrys := grpcmarketplace.Queries{
		Search:     search_listings.NewHandler(readModel),
		Get:        get_listing.NewHandler(readModel),
		ListWanted: list_wanted.NewFirestoreListWantedQuery(client),
	}
	h := grpcmarketplace.NewHandler(cmds, qrys)

	// gRPC server
	srv := grpc.NewServer()
	marketplacev1.RegisterMarketplaceServiceServer(srv, h)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc serve", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Duration(cfg.ShutdownSeconds) * time.Second):
		srv.Stop()
	}

	logger.Info("server stopped")
}
