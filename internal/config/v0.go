package config

const configVersionV0 = "0"

// configV0 predates the commit type settings and only carries a version.
type configV0 struct {
	Version string `json:"version"` // required by vconfig-go
}

// migrateV0 upgrades a v0 file to v1 defaults.
func (c *configV0) migrateV0() *configV1 {
	return newConfigV1()
}
