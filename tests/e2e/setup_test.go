package e2e

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vintaro/marketplace-service/internal/app/listing/queries"
	"github.com/vintaro/marketplace-service/internal/app/listing/repo"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/create_listing"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/set_listing_status"
	"github.com/vintaro/marketplace-service/internal/app/listing/usecases/update_listing"
	"github.com/vintaro/marketplace-service/internal/app/order/checkout"
	"github.com/vintaro/marketplace-service/internal/models/m_outbox"
	"github.com/vintaro/marketplace-service/internal/pkg/clock"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

var (
	fsClient *firestore.Client
	clk      *clock.FakeClock

	createUC    *create_listing.Interactor
	updateUC    *update_listing.Interactor
	setStatusUC *set_listing_status.Interactor
	checkoutUC  *checkout.Interactor

	readModel *queries.FirestoreReadModel
)

func TestMain(m *testing.M) {
	// Keep time in UTC everywhere.
	clk = clock.NewFake(time.Now().UTC().Truncate(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Default emulator host if not provided.
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		_ = os.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8080")
	}

	// Use a unique project per "go test" run so runs never see each other's
	// documents; the emulator namespaces data by project id.
	projectID := fmt.Sprintf("e2e-%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12])

	var err error
	fsClient, err = firestore.NewClient(ctx, projectID)
	if err != nil {
		panic(fmt.Sprintf("firestore.NewClient: %v", err))
	}

	// Wire dependencies.
	listingRepo := repo.NewListingRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := writeplan.NewAdapter(fsClient)
	readModel = queries.NewFirestoreReadModel(fsClient, zap.NewNop())

	createUC = create_listing.NewInteractor(listingRepo, outboxRepo, cm, clk)
	updateUC = update_listing.NewInteractor(listingRepo, outboxRepo, cm, readModel, clk)
	setStatusUC = set_listing_status.NewInteractor(listingRepo, outboxRepo, cm, readModel, clk)
	checkoutUC = checkout.NewInteractor(listingRepo, outboxRepo, cm, fsClient, clk)

	code := m.Run()

	fsClient.Close()
	os.Exit(code)
}

func requireEmulator(t *testing.T) {
	// A quick sanity check so failures are easier to understand.
	require.NotEmpty(t, os.Getenv("FIRESTORE_EMULATOR_HOST"), "FIRESTORE_EMULATOR_HOST must be set (e.g. localhost:8080)")
}

type outboxDoc struct {
	EventType   string
	AggregateID string
	Status      string
}

// fetchOutboxEvents reads outbox documents for a single aggregate.
func fetchOutboxEvents(ctx context.Context, t *testing.T, aggregateID string) []outboxDoc {
	t.Helper()

	docs, err := fsClient.Collection(m_outbox.Collection).
		Where(m_outbox.FldAggregateID, "==", aggregateID).
		Documents(ctx).GetAll()
	require.NoError(t, err)

	out := make([]outboxDoc, 0, len(docs))
	for _, d := range docs {
		data := d.Data()
		out = append(out, outboxDoc{
			EventType:   data[m_outbox.FldEventType].(string),
			AggregateID: data[m_outbox.FldAggregateID].(string),
			Status:      data[m_outbox.FldStatus].(string),
		})
	}
	return out
}
