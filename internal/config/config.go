package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries every runtime setting the application needs. It is built once
// at startup and handed to constructors explicitly; nothing reads the
// environment after Load returns.

type Config struct {
	Server      ServerConfig
	Dynamo      DynamoConfig
	MercadoPago MercadoPagoConfig
}

type ServerConfig struct {
	Port int
}

type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          TablesConfig
}

type TablesConfig struct {
	Customers     string
	ServiceOrders string
	Budgets       string
	SpareParts    string
	Payments      string
	Counters      string
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	return &Config{
		Server: ServerConfig{Port: port},
		Dynamo: DynamoConfig{
			Region:   getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			// Local DynamoDB does not validate credentials, but the AWS SDK
			// requires them.
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Tables: TablesConfig{
				Customers:     getenvDefault("CUSTOMERS_TABLE", "customers"),
				ServiceOrders: getenvDefault("SERVICE_ORDERS_TABLE", "service_orders"),
				Budgets:       getenvDefault("BUDGETS_TABLE", "budgets"),
				SpareParts:    getenvDefault("SPARE_PARTS_TABLE", "spare_parts"),
				Payments:      getenvDefault("PAYMENTS_TABLE", "payments"),
				Counters:      getenvDefault("COUNTERS_TABLE", "id_counters"),
			},
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:        parseBool(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		},
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
