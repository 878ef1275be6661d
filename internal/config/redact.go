package config

import "net/url"

const redactedValue = "xxxxx"

// Redacted returns a copy of c that is safe to log: passwords in connection
// URLs and the Redis password are replaced.
func (c StructuredConfig) Redacted() StructuredConfig {
	c.Storage.DB.DSN = redactURL(c.Storage.DB.DSN)
	c.Events.AMQPURL = redactURL(c.Events.AMQPURL)
	if c.Cache.RedisPassword != "" {
		c.Cache.RedisPassword = redactedValue
	}
	return c
}

// redactURL masks the password of a URL. Values that do not parse are
// masked whole.
func redactURL(raw string) string {
	if raw == "" {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return redactedValue
	}
	return u.Redacted()
}
