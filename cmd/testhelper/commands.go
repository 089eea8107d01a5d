package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/bigint"
	"github.com/vaultsandbox/cryptocore/envelope"
	"github.com/vaultsandbox/cryptocore/numtheory"
)

// jsonCommand builds a command that decodes a Req from stdin, calls fn and
// encodes its result to stdout.
func jsonCommand[Req, Resp any](env *environment, use, short string, fn func(Req) (Resp, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req Req
			dec := json.NewDecoder(cmd.InOrStdin())
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				return fmt.Errorf("%w: %w", errBadRequest, err)
			}

			start := time.Now()
			resp, err := fn(req)
			if err != nil {
				env.log.Debug("command failed", zap.Duration("elapsed", time.Since(start)))
				return err
			}
			env.log.Info("command done", zap.Duration("elapsed", time.Since(start)))
			return json.NewEncoder(cmd.OutOrStdout()).Encode(resp)
		},
	}
}

// parseInt reads a hex integer with an optional leading "-".
func parseInt(name, s string) (*bigint.Int, error) {
	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}
	x, err := bigint.Parse(sign + "0x" + s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return x, nil
}

func formatInt(x *bigint.Int) string {
	return x.Text(bigint.Hexadecimal)
}

func parseBytes(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

type resultResponse struct {
	Result string `json:"result"`
}

type powmodRequest struct {
	Base string `json:"base"`
	Exp  string `json:"exp"`
	Mod  string `json:"mod"`
}

func powmodCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "powmod", "compute base^exp mod mod", func(req powmodRequest) (resultResponse, error) {
		base, err := parseInt("base", req.Base)
		if err != nil {
			return resultResponse{}, err
		}
		exp, err := parseInt("exp", req.Exp)
		if err != nil {
			return resultResponse{}, err
		}
		mod, err := parseInt("mod", req.Mod)
		if err != nil {
			return resultResponse{}, err
		}
		env.log.Debug("powmod", zap.Int("mod_bits", mod.BitLen()), zap.Int("exp_bits", exp.BitLen()))
		r, err := env.engine.PowerMod(base, exp, mod)
		if err != nil {
			return resultResponse{}, err
		}
		return resultResponse{Result: formatInt(r)}, nil
	})
}

type divmodRequest struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type divmodResponse struct {
	Q string `json:"q"`
	R string `json:"r"`
}

func divmodCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "divmod", "Euclidean division of x by y", func(req divmodRequest) (divmodResponse, error) {
		x, err := parseInt("x", req.X)
		if err != nil {
			return divmodResponse{}, err
		}
		y, err := parseInt("y", req.Y)
		if err != nil {
			return divmodResponse{}, err
		}
		q, r, err := x.DivMod(y)
		if err != nil {
			return divmodResponse{}, err
		}
		return divmodResponse{Q: formatInt(q), R: formatInt(r)}, nil
	})
}

type pairRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

func gcdCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "gcd", "greatest common divisor of a and b", func(req pairRequest) (resultResponse, error) {
		a, err := parseInt("a", req.A)
		if err != nil {
			return resultResponse{}, err
		}
		b, err := parseInt("b", req.B)
		if err != nil {
			return resultResponse{}, err
		}
		return resultResponse{Result: formatInt(numtheory.GCD(a, b))}, nil
	})
}

type inverseRequest struct {
	N   string `json:"n"`
	Mod string `json:"mod"`
}

func inverseCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "inverse", "inverse of n modulo mod, 0 when none exists", func(req inverseRequest) (resultResponse, error) {
		n, err := parseInt("n", req.N)
		if err != nil {
			return resultResponse{}, err
		}
		mod, err := parseInt("mod", req.Mod)
		if err != nil {
			return resultResponse{}, err
		}
		r, err := numtheory.InverseMod(n, mod)
		if err != nil {
			return resultResponse{}, err
		}
		return resultResponse{Result: formatInt(r)}, nil
	})
}

type isPrimeRequest struct {
	N string `json:"n"`
}

type isPrimeResponse struct {
	Prime bool `json:"prime"`
}

func isPrimeCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "is-prime", "probabilistic primality test", func(req isPrimeRequest) (isPrimeResponse, error) {
		n, err := parseInt("n", req.N)
		if err != nil {
			return isPrimeResponse{}, err
		}
		ok, err := env.engine.IsPrime(n)
		return isPrimeResponse{Prime: ok}, err
	})
}

type randomPrimeRequest struct {
	Bits int  `json:"bits"`
	Safe bool `json:"safe,omitempty"`
}

type randomPrimeResponse struct {
	Prime string `json:"prime"`
}

func randomPrimeCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "random-prime", "generate a random prime of the given size", func(req randomPrimeRequest) (randomPrimeResponse, error) {
		env.log.Debug("random-prime", zap.Int("bits", req.Bits), zap.Bool("safe", req.Safe))
		gen := env.engine.RandomPrime
		if req.Safe {
			gen = env.engine.RandomSafePrime
		}
		p, err := gen(req.Bits)
		if err != nil {
			return randomPrimeResponse{}, err
		}
		return randomPrimeResponse{Prime: formatInt(p)}, nil
	})
}

type aeadRequest struct {
	Algorithm  string `json:"algorithm"`
	Key        string `json:"key"`
	Nonce      string `json:"nonce"`
	AD         string `json:"ad"`
	Plaintext  string `json:"plaintext,omitempty"`
	Ciphertext string `json:"ciphertext,omitempty"`
}

// decode parses everything but the message body.
func (r aeadRequest) decode() (spec cryptocore.AlgorithmSpec, key, nonce, ad []byte, err error) {
	if spec, err = cryptocore.ParseAlgorithm(r.Algorithm); err != nil {
		return
	}
	if key, err = parseBytes("key", r.Key); err != nil {
		return
	}
	if nonce, err = parseBytes("nonce", r.Nonce); err != nil {
		return
	}
	ad, err = parseBytes("ad", r.AD)
	return
}

type sealResponse struct {
	Ciphertext string `json:"ciphertext"`
}

func sealCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "seal", "AEAD encrypt; the tag is appended to the ciphertext", func(req aeadRequest) (sealResponse, error) {
		spec, key, nonce, ad, err := req.decode()
		if err != nil {
			return sealResponse{}, err
		}
		pt, err := parseBytes("plaintext", req.Plaintext)
		if err != nil {
			return sealResponse{}, err
		}
		env.log.Debug("seal", zap.Stringer("algorithm", spec), zap.Int("length", len(pt)))
		ct, err := env.engine.Seal(spec, key, nonce, ad, pt)
		if err != nil {
			return sealResponse{}, err
		}
		return sealResponse{Ciphertext: hex.EncodeToString(ct)}, nil
	})
}

type openResponse struct {
	Plaintext string `json:"plaintext"`
}

func openCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "open", "AEAD verify and decrypt", func(req aeadRequest) (openResponse, error) {
		spec, key, nonce, ad, err := req.decode()
		if err != nil {
			return openResponse{}, err
		}
		ct, err := parseBytes("ciphertext", req.Ciphertext)
		if err != nil {
			return openResponse{}, err
		}
		env.log.Debug("open", zap.Stringer("algorithm", spec), zap.Int("length", len(ct)))
		pt, err := env.engine.Open(spec, key, nonce, ad, ct)
		if err != nil {
			return openResponse{}, err
		}
		return openResponse{Plaintext: hex.EncodeToString(pt)}, nil
	})
}

// keygenResponse carries keys as base64url, matching payload fields.
type keygenResponse struct {
	SecretKey        string `json:"secret_key"`
	PublicKey        string `json:"public_key"`
	SigningKey       string `json:"signing_key"`
	SigningPublicKey string `json:"signing_public_key"`
}

type keygenRequest struct{}

func keygenCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "keygen", "generate an ML-KEM-768 keypair and an ML-DSA-65 signing key", func(keygenRequest) (keygenResponse, error) {
		kp, err := envelope.GenerateKeypair(env.engine.Random())
		if err != nil {
			return keygenResponse{}, err
		}
		sk, err := envelope.GenerateSigningKey(env.engine.Random())
		if err != nil {
			return keygenResponse{}, err
		}
		raw, err := sk.MarshalBinary()
		if err != nil {
			return keygenResponse{}, err
		}
		return keygenResponse{
			SecretKey:        envelope.ToBase64URL(kp.SecretKey),
			PublicKey:        kp.PublicKeyB64,
			SigningKey:       envelope.ToBase64URL(raw),
			SigningPublicKey: envelope.ToBase64URL(sk.PublicKey),
		}, nil
	})
}

type envelopeSealRequest struct {
	Recipient  string `json:"recipient"`
	SigningKey string `json:"signing_key"`
	Algorithm  string `json:"algorithm,omitempty"`
	Plaintext  string `json:"plaintext"`
	AAD        string `json:"aad"`
}

func envelopeSealCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "envelope-seal", "seal and sign a payload to a recipient", func(req envelopeSealRequest) (*envelope.Payload, error) {
		recipient, err := envelope.FromBase64URL(req.Recipient)
		if err != nil {
			return nil, fmt.Errorf("recipient: %w", err)
		}
		rawSigner, err := envelope.FromBase64URL(req.SigningKey)
		if err != nil {
			return nil, fmt.Errorf("signing_key: %w", err)
		}
		signer, err := envelope.SigningKeyFromBytes(rawSigner)
		if err != nil {
			return nil, err
		}
		pt, err := parseBytes("plaintext", req.Plaintext)
		if err != nil {
			return nil, err
		}
		aad, err := parseBytes("aad", req.AAD)
		if err != nil {
			return nil, err
		}

		opts := []envelope.Option{envelope.WithEngine(env.engine)}
		if req.Algorithm != "" {
			spec, err := cryptocore.ParseAlgorithm(req.Algorithm)
			if err != nil {
				return nil, err
			}
			opts = append(opts, envelope.WithAlgorithm(spec))
		}
		return envelope.Seal(recipient, signer, pt, aad, opts...)
	})
}

type envelopeOpenRequest struct {
	Payload   envelope.Payload `json:"payload"`
	SecretKey string           `json:"secret_key"`
	// Signer pins the expected signing public key when set.
	Signer string `json:"signer,omitempty"`
}

func envelopeOpenCmd(env *environment) *cobra.Command {
	return jsonCommand(env, "envelope-open", "verify and open a payload", func(req envelopeOpenRequest) (openResponse, error) {
		sk, err := envelope.FromBase64URL(req.SecretKey)
		if err != nil {
			return openResponse{}, fmt.Errorf("secret_key: %w", err)
		}
		kp, err := envelope.KeypairFromSecretKey(sk)
		if err != nil {
			return openResponse{}, err
		}

		opts := []envelope.Option{envelope.WithEngine(env.engine)}
		if req.Signer != "" {
			pinned, err := envelope.FromBase64URL(req.Signer)
			if err != nil {
				return openResponse{}, fmt.Errorf("signer: %w", err)
			}
			opts = append(opts, envelope.WithPinnedSigner(pinned))
		}

		if err := envelope.VerifySignature(&req.Payload, opts...); err != nil {
			return openResponse{}, err
		}
		pt, err := envelope.Open(&req.Payload, kp, opts...)
		if err != nil {
			return openResponse{}, err
		}
		return openResponse{Plaintext: hex.EncodeToString(pt)}, nil
	})
}
