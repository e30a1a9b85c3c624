package app

import (
	"fmt"

	expenseHTTP "github.com/allisson/expense-tracker/internal/expense/http"
	expenseRepository "github.com/allisson/expense-tracker/internal/expense/repository"
	expenseUseCase "github.com/allisson/expense-tracker/internal/expense/usecase"
)

// ExpenseRepository returns the expense repository based on database driver.
func (c *Container) ExpenseRepository() (expenseUseCase.ExpenseRepository, error) {
	var err error
	c.expenseRepoInit.Do(func() {
		c.expenseRepo, err = c.initExpenseRepository()
		if err != nil {
			c.initErrors["expenseRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["expenseRepo"]; exists {
		return nil, storedErr
	}
	return c.expenseRepo, nil
}

// ExpenseUseCase returns the expense use case, instrumented with business
// metrics when metrics collection is enabled.
func (c *Container) ExpenseUseCase() (expenseUseCase.ExpenseUseCase, error) {
	var err error
	c.expenseUCInit.Do(func() {
		c.expenseUC, err = c.initExpenseUseCase()
		if err != nil {
			c.initErrors["expenseUC"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["expenseUC"]; exists {
		return nil, storedErr
	}
	return c.expenseUC, nil
}

// ExpenseHandler returns the HTTP handler for expense operations.
func (c *Container) ExpenseHandler() (*expenseHTTP.ExpenseHandler, error) {
	var err error
	c.expenseHandlerInit.Do(func() {
		c.expenseHandler, err = c.initExpenseHandler()
		if err != nil {
			c.initErrors["expenseHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["expenseHandler"]; exists {
		return nil, storedErr
	}
	return c.expenseHandler, nil
}

// initExpenseRepository creates the expense repository instance.
func (c *Container) initExpenseRepository() (expenseUseCase.ExpenseRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for expense repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return expenseRepository.NewMySQLExpenseRepository(db), nil
	case "postgres":
		return expenseRepository.NewPostgreSQLExpenseRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initExpenseUseCase creates the expense use case with all its dependencies.
func (c *Container) initExpenseUseCase() (expenseUseCase.ExpenseUseCase, error) {
	expenseRepo, err := c.ExpenseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get expense repository for expense use case: %w", err)
	}

	useCase := expenseUseCase.NewExpenseUseCase(expenseRepo, c.Clock())

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for expense use case: %w", err)
	}
	useCase = expenseUseCase.NewExpenseUseCaseWithMetrics(useCase, businessMetrics)

	return useCase, nil
}

// initExpenseHandler creates the expense HTTP handler.
func (c *Container) initExpenseHandler() (*expenseHTTP.ExpenseHandler, error) {
	expenseUC, err := c.ExpenseUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get expense use case for expense handler: %w", err)
	}

	return expenseHTTP.NewExpenseHandler(expenseUC, c.Logger()), nil
}
