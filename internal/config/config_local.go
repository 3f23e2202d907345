//go:build !gcloud

package config

// Validate accepts an empty NATS_URL, which disables publishing.
func (c *PubSubConfig) Validate() error {
	return nil
}
