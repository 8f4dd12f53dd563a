// Package dnslink points a domain's DNSLink TXT record at deployed content.
package dnslink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudflare/cloudflare-go"

	"github.com/meigma/ipfsdeploy/core"
)

// Compile-time interface implementation check.
var _ core.DNSUpdater = (*Cloudflare)(nil)

const (
	// CloudflareName selects the Cloudflare provider.
	CloudflareName = "cloudflare"

	// Environment variables users set the Cloudflare settings with.
	SiteDomainVar         = "IPFS_DEPLOY_SITE_DOMAIN"
	CloudflareAPIEmailVar = "IPFS_DEPLOY_CLOUDFLARE__API_EMAIL"
	CloudflareAPIKeyVar   = "IPFS_DEPLOY_CLOUDFLARE__API_KEY"

	recordPrefix = "_dnslink."
)

// CloudflareConfig holds the Cloudflare API credentials.
type CloudflareConfig struct {
	APIEmail string
	APIKey   string
}

// zoneAPI is the subset of the Cloudflare API the updater needs.
type zoneAPI interface {
	ZoneID(ctx context.Context, zone string) (string, error)
	FindTXT(ctx context.Context, zoneID, name string) (id string, found bool, err error)
	CreateTXT(ctx context.Context, zoneID, name, content string) error
	UpdateTXT(ctx context.Context, zoneID, id, name, content string) error
}

// Cloudflare updates DNSLink records through the Cloudflare API.
type Cloudflare struct {
	cfg    CloudflareConfig
	newAPI func(CloudflareConfig) (zoneAPI, error)
	logger *slog.Logger
}

// NewCloudflare creates a Cloudflare updater. A nil logger disables logging.
func NewCloudflare(cfg CloudflareConfig, logger *slog.Logger) *Cloudflare {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cloudflare{cfg: cfg, newAPI: newCloudflareAPI, logger: logger}
}

// Name implements core.DNSUpdater.
func (c *Cloudflare) Name() string { return CloudflareName }

// UpdateLink sets the TXT record _dnslink.<domain> in the zone <domain> to
// "dnslink=/ipfs/<cid>", creating the record when it does not exist.
func (c *Cloudflare) UpdateLink(ctx context.Context, domain, cid string) (string, error) {
	if domain == "" || c.cfg.APIEmail == "" || c.cfg.APIKey == "" {
		return "", fmt.Errorf("cloudflare: %w: set %s", core.ErrMissingDNSConfig,
			strings.Join([]string{SiteDomainVar, CloudflareAPIEmailVar, CloudflareAPIKeyVar}, ", "))
	}

	api, err := c.newAPI(c.cfg)
	if err != nil {
		return "", fmt.Errorf("cloudflare: create client: %w", err)
	}

	zoneID, err := api.ZoneID(ctx, domain)
	if err != nil {
		return "", fmt.Errorf("cloudflare: look up zone %s: %w", domain, err)
	}

	name := RecordName(domain)
	content := RecordContent(cid)

	id, found, err := api.FindTXT(ctx, zoneID, name)
	if err != nil {
		return "", fmt.Errorf("cloudflare: list records for %s: %w", name, err)
	}

	if found {
		c.logger.Debug("updating dnslink record", "record", name, "content", content)
		if err := api.UpdateTXT(ctx, zoneID, id, name, content); err != nil {
			return "", fmt.Errorf("cloudflare: update %s: %w", name, err)
		}
	} else {
		c.logger.Debug("creating dnslink record", "record", name, "content", content)
		if err := api.CreateTXT(ctx, zoneID, name, content); err != nil {
			return "", fmt.Errorf("cloudflare: create %s: %w", name, err)
		}
	}

	return content, nil
}

// RecordName returns the DNSLink TXT record name for domain.
func RecordName(domain string) string {
	return recordPrefix + domain
}

// RecordContent returns the DNSLink TXT record content for cid.
func RecordContent(cid string) string {
	return "dnslink=/ipfs/" + cid
}

// cloudflareAPI adapts *cloudflare.API to zoneAPI.
type cloudflareAPI struct {
	api *cloudflare.API
}

func newCloudflareAPI(cfg CloudflareConfig) (zoneAPI, error) {
	api, err := cloudflare.New(cfg.APIKey, cfg.APIEmail)
	if err != nil {
		return nil, err
	}
	return &cloudflareAPI{api: api}, nil
}

// ZoneID resolves the zone for a domain. ZoneIDByName takes no context, so
// cancellation is only observed before the lookup starts.
func (c *cloudflareAPI) ZoneID(ctx context.Context, zone string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.api.ZoneIDByName(zone)
}

func (c *cloudflareAPI) FindTXT(ctx context.Context, zoneID, name string) (string, bool, error) {
	records, _, err := c.api.ListDNSRecords(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.ListDNSRecordsParams{
		Type: "TXT",
		Name: name,
	})
	if err != nil {
		return "", false, err
	}
	if len(records) == 0 {
		return "", false, nil
	}
	return records[0].ID, true, nil
}

func (c *cloudflareAPI) CreateTXT(ctx context.Context, zoneID, name, content string) error {
	_, err := c.api.CreateDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.CreateDNSRecordParams{
		Type:    "TXT",
		Name:    name,
		Content: content,
		TTL:     1,
	})
	return err
}

func (c *cloudflareAPI) UpdateTXT(ctx context.Context, zoneID, id, name, content string) error {
	_, err := c.api.UpdateDNSRecord(ctx, cloudflare.ZoneIdentifier(zoneID), cloudflare.UpdateDNSRecordParams{
		ID:      id,
		Type:    "TXT",
		Name:    name,
		Content: content,
	})
	return err
}
