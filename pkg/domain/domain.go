package domain

import (
	"dommorph/pkg/model"
	"net"
	"net/url"
	"strings"

	tld "github.com/jpillora/go-tld"
	"github.com/pkg/errors"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrInvalidDomain is returned when a domain can't be split in a base name and a TLD
var ErrInvalidDomain = errors.New("invalid domain")

// Split splits a domain on its public suffix. Subdomains are dropped, IDN are converted
// to punycode and multi-part suffixes ("co.uk") are kept whole in the TLD.
// Only ICANN suffixes count: "shop.blogspot.com" gives blogspot and .com.
func Split(raw string) (model.DomainName, error) {
	host, err := hostname(raw)
	if err != nil {
		return model.DomainName{}, err
	}
	suffix, icann := publicsuffix.PublicSuffix(host)
	if !icann {
		return splitICANN(raw, host, suffix)
	}
	if suffix == host {
		return model.DomainName{}, errors.Wrapf(ErrInvalidDomain, "%q is a public suffix", raw)
	}
	u, err := tld.Parse("https://" + host)
	if err != nil {
		return model.DomainName{}, errors.Wrapf(ErrInvalidDomain, "can't split domain %q: %v", raw, err)
	}
	if u == nil || u.Domain == "" || u.TLD == "" {
		return model.DomainName{}, errors.Wrapf(ErrInvalidDomain, "can't split domain %q", raw)
	}
	return model.DomainName{Base: u.Domain, TLD: "." + u.TLD}, nil
}

// splitICANN splits host on the ICANN part of a private suffix such as blogspot.com
func splitICANN(raw, host, suffix string) (model.DomainName, error) {
	found := false
	for strings.Contains(suffix, ".") {
		suffix = suffix[strings.Index(suffix, ".")+1:]
		if s, icann := publicsuffix.PublicSuffix(suffix); icann {
			suffix, found = s, true
			break
		}
	}
	if !found {
		return model.DomainName{}, errors.Wrapf(ErrInvalidDomain, "%q has no known TLD", raw)
	}
	if suffix == host {
		return model.DomainName{}, errors.Wrapf(ErrInvalidDomain, "%q is a public suffix", raw)
	}
	rest := strings.TrimSuffix(host, "."+suffix)
	return model.DomainName{Base: rest[strings.LastIndex(rest, ".")+1:], TLD: "." + suffix}, nil
}

// hostname extracts the lowercased ASCII host of raw, which may be a bare domain or an URL
func hostname(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.Wrap(ErrInvalidDomain, "empty domain")
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidDomain, "can't parse %q: %v", raw, err)
	}
	host := strings.TrimSuffix(u.Hostname(), ".")
	if host == "" || !strings.Contains(host, ".") {
		return "", errors.Wrapf(ErrInvalidDomain, "%q has no TLD", raw)
	}
	if net.ParseIP(host) != nil {
		return "", errors.Wrapf(ErrInvalidDomain, "%q is an IP address", raw)
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidDomain, "%q is not a valid hostname: %v", raw, err)
	}
	return ascii, nil
}
