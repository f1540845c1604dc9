package container

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

// RegistryAuth holds credentials for a container registry.
type RegistryAuth struct {
	Host     string
	User     string
	Password string
}

// GetRegistryAuth obtains a temporary authorization token from the
// managed registry in the given region.
func GetRegistryAuth(ctx context.Context, region string) (*RegistryAuth, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error while loading aws config: %s", err)
	}
	client := ecr.NewFromConfig(cfg)
	out, err := client.GetAuthorizationToken(ctx, &ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return nil, fmt.Errorf("error while getting registry token: %s", err)
	}
	if len(out.AuthorizationData) == 0 {
		return nil, fmt.Errorf("registry returned no authorization data")
	}
	data := out.AuthorizationData[0]
	return parseAuthData(aws.ToString(data.AuthorizationToken), aws.ToString(data.ProxyEndpoint))
}

// parseAuthData decodes a base64 "user:password" token pair.
func parseAuthData(token, endpoint string) (*RegistryAuth, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("error while decoding registry token: %s", err)
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("registry token has unexpected format")
	}
	return &RegistryAuth{
		Host:     strings.TrimPrefix(endpoint, "https://"),
		User:     parts[0],
		Password: parts[1],
	}, nil
}
