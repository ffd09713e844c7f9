package services

// ServiceContainer bundles every service facade handed to the HTTP layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Budget      BudgetSvcFacade
	Statistics  StatisticsSvcFacade
	Report      ReportSvcFacade
	User        UserSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
