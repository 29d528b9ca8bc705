//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"github.com/stripe/stripe-go/v82/client"
	"go.mongodb.org/mongo-driver/mongo"
	stripeGateway "parcelmarket/internal/gateway/stripe"
	"parcelmarket/internal/handlers/tasks/rider_release"
	"parcelmarket/internal/pkg/config"
	parcelsRepo "parcelmarket/internal/repository/parcels"
	paymentsRepo "parcelmarket/internal/repository/payments"
	ridersRepo "parcelmarket/internal/repository/riders"
	trackingRepo "parcelmarket/internal/repository/tracking"
	usersRepo "parcelmarket/internal/repository/users"
	parcelService "parcelmarket/internal/service/parcel"
	paymentService "parcelmarket/internal/service/payment"
	riderService "parcelmarket/internal/service/rider"
	trackingService "parcelmarket/internal/service/tracking"
	userService "parcelmarket/internal/service/user"
	"parcelmarket/pkg/logger"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	db *mongo.Database,
	stripeClient *client.API,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideReleaseInterval,

		provideUsersRepository,
		provideParcelsRepository,
		provideRidersRepository,
		providePaymentsRepository,
		provideTrackingRepository,

		provideServiceUser,
		provideServiceRider,
		provideServiceParcel,
		provideServicePayment,
		provideServiceTracking,

		provideIdentityVerifier,
		provideStripeGateway,

		provideRiderReleaseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(userService.Repository), new(*usersRepo.Repository)),
		wire.Bind(new(parcelService.Repository), new(*parcelsRepo.Repository)),
		wire.Bind(new(riderService.Repository), new(*ridersRepo.Repository)),
		wire.Bind(new(paymentService.Repository), new(*paymentsRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),

		wire.Bind(new(riderService.UserService), new(*userService.User)),
		wire.Bind(new(parcelService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(paymentService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(paymentService.Gateway), new(*stripeGateway.PaymentGateway)),

		wire.Bind(new(rider_release.Service), new(*riderService.Rider)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-parcel-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	db *mongo.Database,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTrackingRepository,
		provideServiceTracking,

		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
