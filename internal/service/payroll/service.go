package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/pdf"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type payrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileStorage  storage.FileStorage
}

func NewPayrollService(employeeRepo employee.EmployeeRepository, fileStorage storage.FileStorage) payroll.PayrollService {
	return &payrollServiceImpl{
		employeeRepo: employeeRepo,
		fileStorage:  fileStorage,
	}
}

// Helper to get the caller's identity from JWT context
func identityFromContext(ctx context.Context) (employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// GetMySalary implements payroll.PayrollService.
func (s *payrollServiceImpl) GetMySalary(ctx context.Context) (payroll.SalaryResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	breakdown := payroll.ComputeMonthlyBreakdown(emp.BasicSalary, emp.Allowances, emp.Deductions)

	return payroll.SalaryResponse{
		EmployeeID:        emp.ID,
		BasicAnnual:       emp.BasicSalary,
		AllowancesAnnual:  emp.Allowances,
		DeductionsAnnual:  emp.Deductions,
		BasicMonthly:      breakdown.BasicMonthly,
		AllowancesMonthly: breakdown.AllowancesMonthly,
		DeductionsMonthly: breakdown.DeductionsMonthly,
		NetMonthly:        breakdown.NetSalary,
	}, nil
}

// GetBreakdown implements payroll.PayrollService.
func (s *payrollServiceImpl) GetBreakdown(ctx context.Context, req payroll.PeriodRequest) (payroll.BreakdownResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	breakdown := payroll.ComputeMonthlyBreakdown(emp.BasicSalary, emp.Allowances, emp.Deductions)

	return payroll.BreakdownResponse{
		EmployeeID:   emp.ID,
		Month:        req.Month,
		Year:         req.Year,
		BasicMonthly: breakdown.BasicMonthly,
		Allowances: map[string]decimal.Decimal{
			"hra":               breakdown.HRA,
			"conveyance":        breakdown.Conveyance,
			"special_allowance": breakdown.SpecialAllowance,
		},
		Deductions: map[string]decimal.Decimal{
			"provident_fund":   breakdown.ProvidentFund,
			"income_tax":       breakdown.IncomeTax,
			"esi":              breakdown.ESI,
			"professional_tax": breakdown.ProfessionalTax,
		},
		TotalAllowances: breakdown.AllowancesMonthly,
		GrossEarnings:   breakdown.GrossEarnings,
		TotalDeductions: breakdown.DeductionsMonthly,
		NetSalary:       breakdown.NetSalary,
	}, nil
}

// GeneratePayslip implements payroll.PayrollService.
func (s *payrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.PeriodRequest) (payroll.PayslipResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	breakdown := payroll.ComputeMonthlyBreakdown(emp.BasicSalary, emp.Allowances, emp.Deductions)

	position := ""
	if emp.Position != nil {
		position = *emp.Position
	}
	department := ""
	if emp.Department != nil {
		department = *emp.Department
	}

	period := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	document, err := pdf.RenderPayslip(pdf.PayslipData{
		EmployeeName: emp.FullName,
		EmployeeID:   emp.ID,
		Position:     position,
		Department:   department,
		Period:       period,
		Earnings: []pdf.PayslipLine{
			{Label: "Basic Salary", Amount: breakdown.BasicMonthly},
			{Label: "HRA", Amount: breakdown.HRA},
			{Label: "Conveyance", Amount: breakdown.Conveyance},
			{Label: "Special Allowance", Amount: breakdown.SpecialAllowance},
		},
		Deductions: []pdf.PayslipLine{
			{Label: "Provident Fund", Amount: breakdown.ProvidentFund},
			{Label: "Income Tax", Amount: breakdown.IncomeTax},
			{Label: "ESI", Amount: breakdown.ESI},
			{Label: "Professional Tax", Amount: breakdown.ProfessionalTax},
		},
		GrossEarnings: breakdown.GrossEarnings,
		NetSalary:     breakdown.NetSalary,
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	path := fmt.Sprintf("payslips/%s/%04d-%02d.pdf", emp.ID, req.Year, req.Month)
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(document), path); err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to store payslip: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, path)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.PayslipResponse{
		EmployeeID: emp.ID,
		Month:      req.Month,
		Year:       req.Year,
		URL:        url,
	}, nil
}
