// Package sampledata contém os datasets estáticos embutidos no binário.
package sampledata

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// Sales são as vendas diárias exibidas no gráfico "Total Sales".
var Sales = []domain.RawSalesRecord{
	{Date: "2023-01-05", Amount: 3850},
	{Date: "2023-01-18", Amount: 2750},
	{Date: "2023-02-05", Amount: 4325},
	{Date: "2023-02-18", Amount: 5950},
	{Date: "2023-03-05", Amount: 2100},
	{Date: "2023-03-18", Amount: 2250},
	{Date: "2023-04-05", Amount: 5225},
	{Date: "2023-04-18", Amount: 2400},
	{Date: "2023-05-05", Amount: 4125},
	{Date: "2023-05-18", Amount: 5525},
	{Date: "2023-06-05", Amount: 2150},
	{Date: "2023-06-18", Amount: 5025},
	{Date: "2023-07-05", Amount: 3150},
	{Date: "2023-07-18", Amount: 2025},
	{Date: "2023-08-05", Amount: 2350},
	{Date: "2023-08-18", Amount: 4575},
	{Date: "2023-09-05", Amount: 4475},
	{Date: "2023-09-18", Amount: 2225},
	{Date: "2023-10-05", Amount: 3325},
	{Date: "2023-10-18", Amount: 2375},
	{Date: "2023-11-05", Amount: 5325},
	{Date: "2023-11-18", Amount: 4500},
	{Date: "2023-12-05", Amount: 2175},
	{Date: "2023-12-18", Amount: 5400},
	{Date: "2024-01-05", Amount: 2575},
	{Date: "2024-01-18", Amount: 3225},
	{Date: "2024-02-05", Amount: 5825},
	{Date: "2024-02-18", Amount: 5800},
	{Date: "2024-03-05", Amount: 5525},
	{Date: "2024-03-18", Amount: 2175},
	{Date: "2024-04-05", Amount: 5475},
	{Date: "2024-04-18", Amount: 5525},
	{Date: "2024-05-05", Amount: 4325},
	{Date: "2024-05-18", Amount: 2100},
	{Date: "2024-06-05", Amount: 3200},
	{Date: "2024-06-18", Amount: 2075},
	{Date: "2024-07-05", Amount: 5350},
	{Date: "2024-07-18", Amount: 2650},
	{Date: "2024-08-05", Amount: 3650},
	{Date: "2024-08-18", Amount: 4475},
	{Date: "2024-09-05", Amount: 2700},
	{Date: "2024-09-18", Amount: 5250},
	{Date: "2024-10-05", Amount: 2550},
	{Date: "2024-10-18", Amount: 5450},
	{Date: "2024-11-05", Amount: 3750},
	{Date: "2024-11-18", Amount: 5375},
	{Date: "2024-12-05", Amount: 6150},
	{Date: "2024-12-18", Amount: 2950},
}
