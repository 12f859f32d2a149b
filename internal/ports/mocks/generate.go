//go:generate mockgen -source=../product_repository.go    -destination=./mock_product_repository.go    -package=mocks
//go:generate mockgen -source=../restaurant_repository.go -destination=./mock_restaurant_repository.go -package=mocks
//go:generate mockgen -source=../order_repository.go      -destination=./mock_order_repository.go      -package=mocks
//go:generate mockgen -source=../location_repository.go   -destination=./mock_location_repository.go   -package=mocks
//go:generate mockgen -source=../manager_repository.go    -destination=./mock_manager_repository.go    -package=mocks
//go:generate mockgen -source=../product_cache.go         -destination=./mock_product_cache.go         -package=mocks
//go:generate mockgen -source=../geocoder.go              -destination=./mock_geocoder.go              -package=mocks
//go:generate mockgen -source=../banner_source.go         -destination=./mock_banner_source.go         -package=mocks
//go:generate mockgen -source=../validator.go             -destination=./mock_validator.go             -package=mocks
//go:generate mockgen -source=../logger.go                -destination=./mock_logger.go                -package=mocks
//go:generate mockgen -source=../message_consumer.go      -destination=./mock_message_consumer.go      -package=mocks
//go:generate mockgen -source=../storefront_service.go    -destination=./mock_storefront_service.go    -package=mocks
//go:generate mockgen -source=../backoffice_service.go    -destination=./mock_backoffice_service.go    -package=mocks

package mocks
