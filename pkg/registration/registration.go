package registration

import (
	"context"
	"dommorph/pkg/model"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Client queries WHOIS servers, *whois.Client satisfies it
type Client interface {
	Whois(domain string, servers ...string) (string, error)
}

// NewWhoisClient returns a WHOIS client giving up after timeout
func NewWhoisClient(timeout time.Duration) *whois.Client {
	c := whois.NewClient()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// Parser turns a raw WHOIS response into structured data, whoisparser.Parse by default
type Parser func(text string) (whoisparser.WhoisInfo, error)

// Checker checks the registration status of domains, one WHOIS query per domain
type Checker struct {
	client Client
	parse  Parser
	server string
	log    log.FieldLogger
}

// NewChecker returns a Checker. An empty server lets the client find the
// authoritative WHOIS server of each TLD.
func NewChecker(client Client, server string, logger log.FieldLogger) *Checker {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Checker{client: client, parse: whoisparser.Parse, server: server, log: logger}
}

// WithParser replaces the parser of raw WHOIS responses
func (c *Checker) WithParser(p Parser) *Checker {
	c.parse = p
	return c
}

// Check returns the registration status of candidate. Failures are reported in the
// result, Check never fails.
func (c *Checker) Check(ctx context.Context, candidate string) (result model.CheckResult) {
	result = model.CheckResult{Candidate: candidate}
	defer func() {
		if r := recover(); r != nil {
			result.Status = model.StatusError
			result.Message = errors.Errorf("whois lookup panicked: %v", r).Error()
		}
	}()

	if err := ctx.Err(); err != nil {
		return withError(result, err)
	}

	var servers []string
	if c.server != "" {
		servers = append(servers, c.server)
	}
	raw, err := c.client.Whois(candidate, servers...)
	if err != nil {
		c.log.WithField("domain", candidate).Debugf("WHOIS query failed: %v", err)
		return withError(result, err)
	}

	info, err := c.parse(raw)
	switch {
	case err == nil:
		if info.Domain != nil && strings.TrimSpace(info.Domain.Domain) != "" {
			result.Status = model.StatusRegistered
		} else {
			result.Status = model.StatusNotRegistered
		}
	case errors.Is(err, whoisparser.ErrNotFoundDomain), errors.Is(err, whoisparser.ErrPremiumDomain):
		result.Status = model.StatusNotRegistered
	case errors.Is(err, whoisparser.ErrReservedDomain), errors.Is(err, whoisparser.ErrBlockedDomain):
		// held by the registry, nobody can register it
		result.Status = model.StatusRegistered
	default:
		c.log.WithField("domain", candidate).Debugf("WHOIS response can't be parsed: %v", err)
		return withError(result, err)
	}
	return result
}

func withError(r model.CheckResult, err error) model.CheckResult {
	r.Status = model.StatusError
	r.Message = err.Error()
	return r
}
