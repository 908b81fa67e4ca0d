// Command opsctl lists and searches emergency incidents against a
// running alert service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"transit-ops/domain"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Alert service base URL")
	search := flag.String("search", "", "Full-text search over title/description")
	critical := flag.Bool("critical", false, "Only live critical incidents")
	flag.Parse()

	endpoint := *baseURL + "/api/incidents"
	switch {
	case *search != "":
		endpoint += "/search?q=" + url.QueryEscape(*search)
	case *critical:
		endpoint += "/critical"
	}

	incidents, err := fetchIncidents(endpoint)
	if err != nil {
		log.Fatal("Error while fetching incidents: ", err)
	}

	render(incidents)
}

func fetchIncidents(endpoint string) ([]domain.Incident, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service answered %s", resp.Status)
	}

	var incidents []domain.Incident
	if err := json.NewDecoder(resp.Body).Decode(&incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

func render(incidents []domain.Incident) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Type", "Title", "Status", "Priority", "Level", "Timeline"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := lo.Map(incidents, func(incident domain.Incident, _ int) []string {
		return []string{
			incident.ID,
			incident.Type,
			incident.Title,
			string(incident.Status),
			colorizePriority(incident.Priority),
			fmt.Sprintf("%d", incident.EscalationLevel),
			fmt.Sprintf("%d entries", len(incident.Timeline)),
		}
	})
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func colorizePriority(priority domain.Priority) string {
	switch priority {
	case domain.PriorityCritical:
		return color.Red.Sprint(priority)
	case domain.PriorityHigh:
		return color.Yellow.Sprint(priority)
	default:
		return color.Green.Sprint(priority)
	}
}
