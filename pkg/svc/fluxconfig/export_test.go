package fluxconfig

// Exported for tests in the fluxconfig_test package.
var (
	NewProviderForTest  = newProviderForTest
	BuildKustomizations = buildKustomizations
	ProtectedSettings   = protectedSettings
)
