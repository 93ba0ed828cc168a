package provider

// NewIpify creates a specialized HTTP provider that uses the ipify service.
func NewIpify() Provider {
	return HTTP{
		ProviderName: "ipify",
		URL:          "https://api.ipify.org?format=json",
	}
}
