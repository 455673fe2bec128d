//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketplace/internal/handlers/rest/account_delete"
	"marketplace/internal/handlers/rest/account_get"
	"marketplace/internal/handlers/rest/account_patch"
	"marketplace/internal/handlers/rest/account_post"
	"marketplace/internal/handlers/rest/accounts_get"
	"marketplace/internal/handlers/rest/auth_login_post"
	"marketplace/internal/handlers/rest/courier_delete"
	"marketplace/internal/handlers/rest/courier_get"
	"marketplace/internal/handlers/rest/courier_patch"
	"marketplace/internal/handlers/rest/courier_post"
	"marketplace/internal/handlers/rest/couriers_get"
	"marketplace/internal/handlers/rest/customer_delete"
	"marketplace/internal/handlers/rest/customer_get"
	"marketplace/internal/handlers/rest/customer_patch"
	"marketplace/internal/handlers/rest/customer_post"
	"marketplace/internal/handlers/rest/customers_get"
	"marketplace/internal/handlers/rest/order_delete"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_patch"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/review_delete"
	"marketplace/internal/handlers/rest/review_get"
	"marketplace/internal/handlers/rest/review_patch"
	"marketplace/internal/handlers/rest/review_post"
	"marketplace/internal/handlers/rest/reviews_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/password"
	"marketplace/internal/pkg/token"

	accountRepo "marketplace/internal/repository/account"
	courierRepo "marketplace/internal/repository/courier"
	customerRepo "marketplace/internal/repository/customer"
	orderRepo "marketplace/internal/repository/order"
	reviewRepo "marketplace/internal/repository/review"
	accountService "marketplace/internal/service/account"
	courierService "marketplace/internal/service/courier"
	customerService "marketplace/internal/service/customer"
	identityService "marketplace/internal/service/identity"
	orderService "marketplace/internal/service/order"
	reviewService "marketplace/internal/service/review"

	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

type Application struct {
	ServiceAccount  ServiceAccount
	ServiceCustomer ServiceCustomer
	ServiceCourier  ServiceCourier
	ServiceOrder    ServiceOrder
	ServiceReview   ServiceReview
	Identity        Identity
	TokenIssuer     TokenIssuer
}

type ServiceAccount interface {
	account_post.Service
	account_get.Service
	accounts_get.Service
	account_patch.Service
	account_delete.Service
	auth_login_post.Service
}

type ServiceCustomer interface {
	customer_post.Service
	customer_get.Service
	customers_get.Service
	customer_patch.Service
	customer_delete.Service
}

type ServiceCourier interface {
	courier_post.Service
	courier_get.Service
	couriers_get.Service
	courier_patch.Service
	courier_delete.Service
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_patch.Service
	order_delete.Service
}

type ServiceReview interface {
	review_post.Service
	review_get.Service
	reviews_get.Service
	review_patch.Service
	review_delete.Service
}

type Identity interface {
	AccountID(authorization string) (int64, error)
	CustomerID(ctx context.Context, authorization string) (int64, error)
	CourierID(ctx context.Context, authorization string) (int64, error)
}

type TokenIssuer interface {
	Issue(accountID int64) (string, error)
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTokenCodec,
		password.NewArgon2idHasher,

		provideAccountRepository,
		provideCustomerRepository,
		provideCourierRepository,
		provideOrderRepository,
		provideReviewRepository,

		provideServiceAccount,
		provideServiceCustomer,
		provideServiceCourier,
		provideServiceOrder,
		provideServiceReview,
		provideIdentity,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceReview), new(*reviewService.Review)),
		wire.Bind(new(Identity), new(*identityService.Identity)),
		wire.Bind(new(TokenIssuer), new(*token.Codec)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(reviewService.Repository), new(*reviewRepo.Repository)),

		wire.Bind(new(accountService.PasswordHasher), new(*password.Argon2idHasher)),
		wire.Bind(new(identityService.TokenVerifier), new(*token.Codec)),
		wire.Bind(new(identityService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(identityService.CourierRepository), new(*courierRepo.Repository)),

		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(customerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reviewService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenCodec(cfg *config.Config) *token.Codec {
	return token.New(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideServiceAccount(
	repository accountService.Repository,
	hasher accountService.PasswordHasher,
	txManager accountService.TxManager,
) *accountService.Account {
	return accountService.New(repository, hasher, txManager)
}

func provideServiceCustomer(
	repository customerService.Repository,
	txManager customerService.TxManager,
) *customerService.Customer {
	return customerService.New(repository, txManager)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, publisher, txManager)
}

func provideServiceReview(
	repository reviewService.Repository,
	txManager reviewService.TxManager,
) *reviewService.Review {
	return reviewService.New(repository, txManager)
}

func provideIdentity(
	verifier identityService.TokenVerifier,
	customers identityService.CustomerRepository,
	couriers identityService.CourierRepository,
) *identityService.Identity {
	return identityService.New(verifier, customers, couriers)
}
