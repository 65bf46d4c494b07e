package main

import (
	"encoding/json"
	"fmt"
	"os"

	"slotmanager_backend/internal/convert"
	"slotmanager_backend/pkg/utils"
)

func main() {
	utils.InitLogger()

	if len(os.Args) < 2 {
		fmt.Println("Usage: convert-backup <legacy_backup.json> [output.json]")
		fmt.Println("\nExample:")
		fmt.Println("  convert-backup backup_2025-10-26.json backup_converted.json")
		os.Exit(1)
	}

	inputPath := os.Args[1]
	outputPath := "backup_converted.json"
	if len(os.Args) > 2 {
		outputPath = os.Args[2]
	}

	utils.LogInfo("Reading legacy backup", map[string]interface{}{"path": inputPath})
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		utils.LogFatal(err, "Failed to read input file")
	}

	var legacy convert.LegacyBackup
	if err := json.Unmarshal(raw, &legacy); err != nil {
		utils.LogFatal(err, "Failed to parse legacy backup")
	}

	doc := convert.NewConverter().Convert(&legacy)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		utils.LogFatal(err, "Failed to encode converted backup")
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		utils.LogFatal(err, "Failed to write output file")
	}

	utils.LogInfo("Conversion complete", map[string]interface{}{
		"output":    outputPath,
		"regions":   len(doc.Regions),
		"clients":   len(doc.Clients),
		"operators": len(doc.Operators),
		"machines":  len(doc.Machines),
		"readings":  len(doc.Readings),
	})
}
