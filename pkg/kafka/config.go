package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// ClientID is attached to every connection for broker-side logging.
	ClientID string
}
