package envelope

import (
	"github.com/vaultsandbox/cryptocore"
)

// config holds settings shared by Seal, VerifySignature and Open.
type config struct {
	engine  *cryptocore.Engine
	suite   cryptocore.AlgorithmSpec
	context string
	pinned  []byte
}

// Option configures Seal, VerifySignature and Open.
type Option func(*config)

// WithEngine sets the engine that supplies randomness and the AEAD
// registry. Default: cryptocore.New() with no options.
func WithEngine(e *cryptocore.Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithAlgorithm sets the AEAD Seal uses. Open always uses the algorithm
// named in the payload. Default: AES-256/GCM
func WithAlgorithm(spec cryptocore.AlgorithmSpec) Option {
	return func(c *config) {
		c.suite = spec
	}
}

// WithContext sets the domain separation string fed to HKDF and the
// signature transcript. Default: DefaultContext
func WithContext(context string) Option {
	return func(c *config) {
		c.context = context
	}
}

// WithPinnedSigner makes VerifySignature reject payloads signed by any key
// other than publicKey.
func WithPinnedSigner(publicKey []byte) Option {
	return func(c *config) {
		c.pinned = publicKey
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		suite:   cryptocore.AlgorithmSpec{Cipher: cryptocore.AES256, Mode: cryptocore.GCM},
		context: DefaultContext,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.engine == nil {
		var engineOpts []cryptocore.Option
		if randReader != nil {
			engineOpts = append(engineOpts, cryptocore.WithRandom(randReader))
		}
		e, err := cryptocore.New(engineOpts...)
		if err != nil {
			return nil, err
		}
		cfg.engine = e
	}
	return cfg, nil
}
