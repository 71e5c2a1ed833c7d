package fluxconfig

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/arcflux/arcflux/pkg/svc/source"
	"github.com/arcflux/arcflux/pkg/utils/parse"
)

// Protected setting keys. These values are write-only: the service never
// echoes them back on read operations.
const (
	sshPrivateKeyKey   = "sshPrivateKey"
	httpsKeyKey        = "httpsKey"
	bucketSecretKeyKey = "bucketSecretKey"
)

// protectedSettings assembles the write-only secret payload for a
// configuration request: the ssh private key (validated as a well-formed
// key), the https password, and the bucket secret key. Returns nil when no
// secret material was supplied so the request omits the block entirely.
func protectedSettings(options source.Options) (map[string]*string, error) {
	settings := map[string]*string{}

	privateKey, err := parse.DataFromKeyOrFile(options.SSHPrivateKey, options.SSHPrivateKeyFile)
	if err != nil {
		return nil, err
	}

	if privateKey != "" {
		err = source.ValidatePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}

		settings[sshPrivateKeyKey] = to.Ptr(privateKey)
	}

	if options.HTTPSUser != "" && options.HTTPSKey != "" {
		settings[httpsKeyKey] = to.Ptr(parse.ToBase64(options.HTTPSKey))
	}

	if options.BucketSecretKey != "" {
		settings[bucketSecretKeyKey] = to.Ptr(parse.ToBase64(options.BucketSecretKey))
	}

	if len(settings) == 0 {
		return nil, nil
	}

	return settings, nil
}
