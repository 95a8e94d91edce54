package registration_test

import (
	"context"
	"dommorph/pkg/model"
	"dommorph/pkg/registration"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	whoisparser "github.com/likexian/whois-parser"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const registeredRecord = `   Domain Name: GOOGLE.COM
   Registry Domain ID: 2138514_DOMAIN_COM-VRSN
   Registrar WHOIS Server: whois.markmonitor.com
   Registrar URL: http://www.markmonitor.com
   Updated Date: 2019-09-09T15:39:04Z
   Creation Date: 1997-09-15T04:00:00Z
   Registry Expiry Date: 2028-09-14T04:00:00Z
   Registrar: MarkMonitor Inc.
   Registrar IANA ID: 292
   Registrar Abuse Contact Email: abusecomplaints@markmonitor.com
   Registrar Abuse Contact Phone: +1.2083895740
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
   Name Server: NS1.GOOGLE.COM
   Name Server: NS2.GOOGLE.COM
   DNSSEC: unsigned
>>> Last update of whois database: 2023-01-30T10:12:11Z <<<
`

const notFoundRecord = `No match for "GOOOGLE-EXAMPLE.COM".
>>> Last update of whois database: 2023-01-30T10:12:11Z <<<
`

// fakeClient answers WHOIS queries from fixed records
type fakeClient struct {
	records map[string]string
	errs    map[string]error
	calls   []string
	servers [][]string
}

func (f *fakeClient) Whois(domain string, servers ...string) (string, error) {
	f.calls = append(f.calls, domain)
	f.servers = append(f.servers, servers)
	if domain == "panic.com" {
		panic("boom")
	}
	if err, ok := f.errs[domain]; ok {
		return "", err
	}
	return f.records[domain], nil
}

var _ = Describe("Checker", func() {
	var client *fakeClient
	var checker *registration.Checker
	logger, _ := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	BeforeEach(func() {
		client = &fakeClient{
			records: map[string]string{
				"google.com":          registeredRecord,
				"gooogle-example.com": notFoundRecord,
			},
			errs: map[string]error{
				"timeout.com": errors.New("whois: connect to whois server failed: i/o timeout"),
			},
		}
		checker = registration.NewChecker(client, "", logger)
	})

	It("should report a registered domain", func() {
		r := checker.Check(context.Background(), "google.com")
		Expect(r).To(Equal(model.CheckResult{Candidate: "google.com", Status: model.StatusRegistered}))
		Expect(r.StatusString()).To(Equal("Registered"))
	})
	It("should report a domain without record as not registered", func() {
		r := checker.Check(context.Background(), "gooogle-example.com")
		Expect(r.Status).To(Equal(model.StatusNotRegistered))
		Expect(r.StatusString()).To(Equal("Not Registered"))
	})
	It("should report a lookup failure as an error", func() {
		r := checker.Check(context.Background(), "timeout.com")
		Expect(r.Status).To(Equal(model.StatusError))
		Expect(r.StatusString()).To(Equal("Error: whois: connect to whois server failed: i/o timeout"))
	})
	It("should recover from a panicking client", func() {
		r := checker.Check(context.Background(), "panic.com")
		Expect(r.Status).To(Equal(model.StatusError))
		Expect(r.Message).To(ContainSubstring("boom"))
	})
	It("should not query once the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := checker.Check(ctx, "google.com")
		Expect(r.StatusString()).To(Equal("Error: context canceled"))
		Expect(client.calls).To(BeEmpty())
	})
	It("should query each candidate once", func() {
		checker.Check(context.Background(), "google.com")
		Expect(client.calls).To(Equal([]string{"google.com"}))
		Expect(client.servers[0]).To(BeEmpty())
	})
	It("should use the configured server", func() {
		checker = registration.NewChecker(client, "whois.verisign-grs.com", logger)
		checker.Check(context.Background(), "google.com")
		Expect(client.servers[0]).To(Equal([]string{"whois.verisign-grs.com"}))
	})

	Describe("with raw responses", func() {
		BeforeEach(func() {
			client.records["empty.com"] = ""
			client.records["garbage.com"] = "lorem ipsum dolor sit amet\nconsectetur adipiscing elit\n"
		})

		It("should report an empty response as an error", func() {
			r := checker.Check(context.Background(), "empty.com")
			Expect(r.Status).To(Equal(model.StatusError))
			Expect(r.Message).To(ContainSubstring("invalid"))
		})
		It("should report an unreadable response as an error", func() {
			r := checker.Check(context.Background(), "garbage.com")
			Expect(r.Status).To(Equal(model.StatusError))
			Expect(r.Message).To(HavePrefix("whoisparser:"))
		})
	})

	DescribeTable("parser outcomes",
		func(info whoisparser.WhoisInfo, parseErr error, expected model.Status) {
			client.records["example.net"] = "raw"
			checker.WithParser(func(text string) (whoisparser.WhoisInfo, error) {
				Expect(text).To(Equal("raw"))
				return info, parseErr
			})
			r := checker.Check(context.Background(), "example.net")
			Expect(r.Status).To(Equal(expected))
			if expected == model.StatusError {
				Expect(r.Message).To(Equal(parseErr.Error()))
			} else {
				Expect(r.Message).To(BeEmpty())
			}
		},
		Entry("domain field set", whoisparser.WhoisInfo{Domain: &whoisparser.Domain{Domain: "example.net"}}, nil, model.StatusRegistered),
		Entry("no domain section", whoisparser.WhoisInfo{}, nil, model.StatusNotRegistered),
		Entry("empty domain field", whoisparser.WhoisInfo{Domain: &whoisparser.Domain{Domain: " "}}, nil, model.StatusNotRegistered),
		Entry("not found", whoisparser.WhoisInfo{}, whoisparser.ErrNotFoundDomain, model.StatusNotRegistered),
		Entry("premium", whoisparser.WhoisInfo{}, whoisparser.ErrPremiumDomain, model.StatusNotRegistered),
		Entry("reserved", whoisparser.WhoisInfo{}, whoisparser.ErrReservedDomain, model.StatusRegistered),
		Entry("blocked", whoisparser.WhoisInfo{}, whoisparser.ErrBlockedDomain, model.StatusRegistered),
		Entry("query limit exceeded", whoisparser.WhoisInfo{}, whoisparser.ErrDomainLimitExceed, model.StatusError),
		Entry("other failure", whoisparser.WhoisInfo{}, errors.New("whoisparser: unexpected format"), model.StatusError),
	)

	Describe("NewWhoisClient", func() {
		It("should satisfy Client", func() {
			var c registration.Client = registration.NewWhoisClient(0)
			Expect(c).NotTo(BeNil())
		})
	})
})
