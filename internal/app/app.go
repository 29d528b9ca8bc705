package app

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v82/client"
	"go.mongodb.org/mongo-driver/mongo"
	identityGateway "parcelmarket/internal/gateway/identity"
	stripeGateway "parcelmarket/internal/gateway/stripe"
	"parcelmarket/internal/handlers/rest/parcel_assign_post"
	"parcelmarket/internal/handlers/rest/parcel_delete"
	"parcelmarket/internal/handlers/rest/parcel_get"
	"parcelmarket/internal/handlers/rest/parcel_post"
	"parcelmarket/internal/handlers/rest/parcels_get"
	"parcelmarket/internal/handlers/rest/payment_intent_post"
	"parcelmarket/internal/handlers/rest/payment_post"
	"parcelmarket/internal/handlers/rest/payments_get"
	"parcelmarket/internal/handlers/rest/rider_delete"
	"parcelmarket/internal/handlers/rest/rider_post"
	"parcelmarket/internal/handlers/rest/rider_review_patch"
	"parcelmarket/internal/handlers/rest/rider_status_patch"
	"parcelmarket/internal/handlers/rest/riders_active_get"
	"parcelmarket/internal/handlers/rest/riders_available_get"
	"parcelmarket/internal/handlers/rest/riders_pending_get"
	"parcelmarket/internal/handlers/rest/tracking_post"
	"parcelmarket/internal/handlers/rest/user_post"
	"parcelmarket/internal/handlers/rest/user_role_get"
	"parcelmarket/internal/handlers/rest/user_role_patch"
	"parcelmarket/internal/handlers/rest/users_search_get"
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
	"parcelmarket/pkg/background"
	"parcelmarket/pkg/logger"
)

type (
	ReleaseInterval time.Duration
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceParcel     ServiceParcel
	ServiceRider      ServiceRider
	ServicePayment    ServicePayment
	ServiceTracking   ServiceTracking
	IdentityVerifier  *identityGateway.Verifier
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	users_search_get.Service
	user_role_get.Service
	user_post.Service
	user_role_patch.Service
}

type ServiceParcel interface {
	parcels_get.Service
	parcel_get.Service
	parcel_post.Service
	parcel_delete.Service
	parcel_assign_post.Service
}

type ServiceRider interface {
	rider_post.Service
	riders_pending_get.Service
	riders_active_get.Service
	riders_available_get.Service
	rider_status_patch.Service
	rider_review_patch.Service
	rider_delete.Service
}

type ServicePayment interface {
	payments_get.Service
	payment_post.Service
	payment_intent_post.Service
}

type ServiceTracking interface {
	tracking_post.Service
}

type KafkaWorkerApp struct {
	TrackingService *trackingService.Tracking
}

func provideUsersRepository(db *mongo.Database) *usersRepo.Repository {
	return usersRepo.New(db)
}

func provideParcelsRepository(db *mongo.Database) *parcelsRepo.Repository {
	return parcelsRepo.New(db)
}

func provideRidersRepository(db *mongo.Database) *ridersRepo.Repository {
	return ridersRepo.New(db)
}

func providePaymentsRepository(db *mongo.Database) *paymentsRepo.Repository {
	return paymentsRepo.New(db)
}

func provideTrackingRepository(db *mongo.Database) *trackingRepo.Repository {
	return trackingRepo.New(db)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceRider(
	repository riderService.Repository,
	users riderService.UserService,
) *riderService.Rider {
	return riderService.New(repository, users)
}

func provideServiceParcel(
	repository parcelService.Repository,
	riders parcelService.RiderService,
) *parcelService.Parcel {
	return parcelService.New(repository, riders)
}

func provideServicePayment(
	repository paymentService.Repository,
	parcels paymentService.ParcelService,
	gateway paymentService.Gateway,
) *paymentService.Payment {
	return paymentService.New(repository, parcels, gateway)
}

func provideServiceTracking(repository trackingService.Repository) *trackingService.Tracking {
	return trackingService.New(repository)
}

func provideIdentityVerifier(cfg *config.Config) *identityGateway.Verifier {
	return identityGateway.New(cfg.Auth.JWTSecret)
}

func provideStripeGateway(stripeClient *client.API) *stripeGateway.PaymentGateway {
	return stripeGateway.New(stripeClient.PaymentIntents)
}

func provideReleaseInterval(cfg *config.Config) ReleaseInterval {
	return ReleaseInterval(cfg.Tasks.RiderReleaseInterval)
}

func provideRiderReleaseTask(
	log logger.Logger,
	riders rider_release.Service,
	interval ReleaseInterval,
) *rider_release.RiderRelease {
	return rider_release.NewRiderRelease(log, riders, time.Duration(interval))
}

func provideTaskList(
	riderReleaseTask *rider_release.RiderRelease,
) []background.Task {
	return []background.Task{
		riderReleaseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
