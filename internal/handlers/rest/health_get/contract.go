//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=health_get_test
package health_get

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}
