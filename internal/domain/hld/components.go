package hld

import (
	"regexp"
	"strings"

	"dsa-notes/internal/domain/model"
)

var (
	servicePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\w+)\s+Service`),
		regexp.MustCompile(`(?i)Service:\s*(\w+)`),
	}
	databasePattern = regexp.MustCompile(`(?i)\b(PostgreSQL|MySQL|MongoDB|Cassandra|DynamoDB|Elasticsearch)\b`)
	cachePattern    = regexp.MustCompile(`(?i)\b(Redis|Memcached)\b`)
	queuePattern    = regexp.MustCompile(`(?i)\b(Kafka|RabbitMQ|SQS)\b`)
	storagePattern  = regexp.MustCompile(`(?i)\b(S3|Object Storage)\b`)
	cdnPattern      = regexp.MustCompile(`(?i)\b(CDN|CloudFront|Cloudflare)\b`)
	lbPattern       = regexp.MustCompile(`(?i)\b(Load Balancer|API Gateway)\b`)
)

// ExtractComponents scans prose for service names and well-known products.
// Each list keeps first-seen order and drops case-insensitive duplicates.
func ExtractComponents(content string) model.Components {
	var services []string
	for _, p := range servicePatterns {
		for _, name := range captures(p, content) {
			if len(name) > 2 {
				services = append(services, name)
			}
		}
	}

	return model.Components{
		Services:      dedupe(services),
		Databases:     dedupe(captures(databasePattern, content)),
		Caches:        dedupe(captures(cachePattern, content)),
		Queues:        dedupe(captures(queuePattern, content)),
		Storage:       dedupe(captures(storagePattern, content)),
		CDN:           dedupe(captures(cdnPattern, content)),
		LoadBalancers: dedupe(captures(lbPattern, content)),
	}
}

func captures(p *regexp.Regexp, content string) []string {
	matches := p.FindAllStringSubmatch(content, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) > 1 && m[1] != "" {
			out = append(out, m[1])
		}
	}
	return out
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
