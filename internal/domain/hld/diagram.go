package hld

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxServices      = 5
	maxDatabaseNodes = 3
	maxDatabaseEdges = 2
)

// RenderDiagram builds a mermaid flowchart from the components in content.
func RenderDiagram(content, title string) string {
	c := ExtractComponents(content)

	var b strings.Builder
	b.WriteString("```mermaid\n")
	if title != "" {
		fmt.Fprintf(&b, "---\ntitle: %s\n---\n", title)
	}
	b.WriteString("graph TB\n")
	b.WriteString("    subgraph Clients\n")
	b.WriteString("        Web[Web Browser]\n")
	b.WriteString("        Mobile[Mobile App]\n")
	b.WriteString("    end\n\n")

	if len(c.LoadBalancers) > 0 {
		b.WriteString("    subgraph Load Balancing\n")
		b.WriteString("        LB[Load Balancer]\n")
		b.WriteString("    end\n\n")
	}

	services := limit(c.Services, maxServices)
	if len(services) > 0 {
		b.WriteString("    subgraph Application Services\n")
		for i, s := range services {
			fmt.Fprintf(&b, "        S%d[%s Service]\n", i+1, s)
		}
		b.WriteString("    end\n\n")
	}

	if len(c.Databases) > 0 {
		b.WriteString("    subgraph Data Storage\n")
		for _, db := range limit(c.Databases, maxDatabaseNodes) {
			fmt.Fprintf(&b, "        %s[%s]\n", nodeID("DB", db), db)
		}
		b.WriteString("    end\n\n")
	}

	writeGroup(&b, "Caching Layer", "Cache", c.Caches)
	writeGroup(&b, "Message Queue", "Queue", c.Queues)
	writeGroup(&b, "Object Storage", "Storage", c.Storage)

	if len(c.CDN) > 0 {
		b.WriteString("    subgraph CDNLayer\n")
		b.WriteString("        CDNNode[Content Delivery Network]\n")
		b.WriteString("    end\n\n")
	}

	b.WriteString("    Web --> LB\n")
	b.WriteString("    Mobile --> LB\n")

	if len(c.LoadBalancers) > 0 {
		for i := range services {
			fmt.Fprintf(&b, "    LB --> S%d\n", i+1)
		}
	}

	for i := range services {
		for _, db := range limit(c.Databases, maxDatabaseEdges) {
			fmt.Fprintf(&b, "    S%d --> %s\n", i+1, nodeID("DB", db))
		}
		for _, cache := range c.Caches {
			fmt.Fprintf(&b, "    S%d --> %s\n", i+1, nodeID("Cache", cache))
		}
		for _, q := range c.Queues {
			fmt.Fprintf(&b, "    S%d --> %s\n", i+1, nodeID("Queue", q))
		}
	}

	if len(services) > 0 {
		for _, s := range c.Storage {
			fmt.Fprintf(&b, "    S1 --> %s\n", nodeID("Storage", s))
		}
	}

	if len(c.CDN) > 0 {
		for _, s := range c.Storage {
			fmt.Fprintf(&b, "    %s --> CDNNode\n", nodeID("Storage", s))
		}
		b.WriteString("    CDNNode --> Web\n")
		b.WriteString("    CDNNode --> Mobile\n")
	}

	b.WriteString("```\n")
	return b.String()
}

// TitleFromFilename turns "design-url-shortener" into "Url Shortener".
func TitleFromFilename(stem string) string {
	name := strings.TrimPrefix(stem, "design-")
	name = strings.ReplaceAll(name, "-", " ")
	return cases.Title(language.English).String(name)
}

func writeGroup(b *strings.Builder, label, prefix string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "    subgraph %s\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "        %s[%s]\n", nodeID(prefix, item), item)
	}
	b.WriteString("    end\n\n")
}

func nodeID(prefix, name string) string {
	name = strings.ReplaceAll(name, " ", "")
	return prefix + strings.ReplaceAll(name, "-", "")
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
