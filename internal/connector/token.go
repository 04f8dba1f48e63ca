package connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// TokenSource supplies the bearer token sent to the connector service.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// NoToken sends requests without an Authorization header, which the local
// emulator accepts.
type NoToken struct{}

func (NoToken) Token(context.Context) (string, error) { return "", nil }

// ssmAPI is the minimal AWS SSM interface required by ParamStoreToken.
// *ssm.Client from aws-sdk-go-v2 satisfies this interface.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// tokenPayload is the expected JSON shape stored in SSM for the connector token.
type tokenPayload struct {
	Token string `json:"token"`
}

// ParamStoreToken reads the token from an SSM SecureString on first use and
// caches it for the lifetime of the process. Failed reads are not cached, so
// a transient SSM error only fails the current turn.
type ParamStoreToken struct {
	api  ssmAPI
	name string

	mu    sync.Mutex
	token string
}

// NewParamStoreToken reads the token from <paramPrefix>/connector-token.
func NewParamStoreToken(api ssmAPI, paramPrefix string) (*ParamStoreToken, error) {
	if api == nil {
		return nil, errors.New("connector: ssm api must not be nil")
	}
	paramPrefix = strings.TrimRight(strings.TrimSpace(paramPrefix), "/")
	if paramPrefix == "" {
		return nil, errors.New("connector: parameter prefix must not be empty")
	}
	return &ParamStoreToken{api: api, name: paramPrefix + "/connector-token"}, nil
}

func (p *ParamStoreToken) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.token != "" {
		return p.token, nil
	}

	raw, err := p.getParameter(ctx)
	if err != nil {
		return "", err
	}
	var tp tokenPayload
	if err := json.Unmarshal([]byte(raw), &tp); err != nil {
		return "", fmt.Errorf("connector: unmarshal paramstore token value as JSON: %w", err)
	}
	if tp.Token == "" {
		return "", errors.New("connector: token is empty")
	}
	p.token = tp.Token
	return p.token, nil
}

func (p *ParamStoreToken) getParameter(ctx context.Context) (string, error) {
	out, err := p.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("connector: get parameter %q: %w", p.name, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("connector: parameter %q missing value", p.name)
	}
	return *out.Parameter.Value, nil
}
