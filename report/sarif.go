package report

import "encoding/json"

// sarifLog is the minimal subset of the SARIF 2.1.0 schema a static
// analyzer needs: one run, one tool with a rule per detector, one result
// per surviving instance. This is the machine-oriented shape the report
// section names alongside Markdown and JSON.
type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name  string      `json:"name"`
	Rules []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	ShortDescription sarifText             `json:"shortDescription"`
	FullDescription  sarifText             `json:"fullDescription"`
	Properties       sarifRuleProperties   `json:"properties"`
}

type sarifRuleProperties struct {
	Severity string `json:"security-severity,omitempty"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string            `json:"ruleId"`
	Level     string            `json:"level"`
	Message   sarifText         `json:"message"`
	Locations []sarifLocation   `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// sarifLevel maps this module's two-band severity taxonomy onto SARIF's
// own level vocabulary: High becomes "error" (fails a CI gate by
// default in most SARIF consumers), Low becomes "warning".
func sarifLevel(sev string) string {
	if sev == "High" {
		return "error"
	}
	return "warning"
}

// ToSARIF renders s as a SARIF 2.1.0 log, one rule per detector with at
// least one surviving instance and one result per surviving instance.
func (s *Summary) ToSARIF() ([]byte, error) {
	ruleIndex := make(map[string]bool)
	var rules []sarifRule
	for _, inst := range s.Report.Instances {
		if ruleIndex[inst.DetectorName] {
			continue
		}
		ruleIndex[inst.DetectorName] = true
		rules = append(rules, sarifRule{
			ID:               inst.DetectorName,
			Name:             inst.Title,
			ShortDescription: sarifText{Text: inst.Title},
			FullDescription:  sarifText{Text: inst.Description},
			Properties:       sarifRuleProperties{Severity: string(inst.Severity)},
		})
	}

	var results []sarifResult
	for _, inst := range s.Report.Instances {
		results = append(results, sarifResult{
			RuleID:  inst.DetectorName,
			Level:   sarifLevel(string(inst.Severity)),
			Message: sarifText{Text: inst.Description},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: inst.File},
					Region:           sarifRegion{StartLine: inst.Line},
				},
			}},
		})
	}

	log := sarifLog{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool:    sarifTool{Driver: sarifDriver{Name: "aderyn-sub003", Rules: rules}},
			Results: results,
		}},
	}
	return json.MarshalIndent(log, "", "  ")
}
