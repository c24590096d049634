package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/xuri/excelize/v2"
)

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateExcel creates an Excel file from the provided data slice. Column
// values are looked up by reflection using the header names as field names.
func GenerateExcel(data interface{}, taskName string, headers []string) (string, error) {
	dirPath := "./public/files"
	err := EnsureDirectoryExists(dirPath + "/placeholder")
	if err != nil {
		log.Printf("Failed to ensure directory exists: %v", err)
		return "", fmt.Errorf("failed to ensure directory exists: %v", err)
	}

	f := excelize.NewFile()

	sheetName := "Sheet1"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}

	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune(65+col)))
		err := f.SetCellValue(sheetName, cell, header)
		if err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	dataSlice := reflect.ValueOf(data)
	if dataSlice.Kind() != reflect.Slice {
		return "", fmt.Errorf("expected data to be a slice")
	}

	for row := 0; row < dataSlice.Len(); row++ {
		item := dataSlice.Index(row).Interface()

		for col, header := range headers {
			field := reflect.ValueOf(item).FieldByName(header)
			if field.IsValid() {
				value := field.Interface()
				cell := fmt.Sprintf("%s%d", string(rune(65+col)), row+2)

				err := f.SetCellValue(sheetName, cell, value)
				if err != nil {
					return "", fmt.Errorf("error setting value for field %s (Row: %d, Column: %s): %v", header, row+2, string(rune(65+col)), err)
				}
			} else {
				log.Printf("Field %s not found for row %d", header, row+2)
			}
		}
	}

	f.SetActiveSheet(index)

	now := time.Now()
	fileName := fmt.Sprintf("%s_%s.xlsx", taskName, now.Format("2006-01-02_15-04-05"))
	filePath := fmt.Sprintf("/public/files/%s", fileName)
	relativeFilePath := fmt.Sprintf("%s/%s", dirPath, fileName)

	err = f.SaveAs(relativeFilePath)
	if err != nil {
		log.Printf("Error saving Excel file: %v", err)
		return "", fmt.Errorf("error saving Excel file: %v", err)
	}

	return filePath, nil
}
