package skeleton

import "fmt"

// configTemplate is the body of configs/configuration.yml.
const configTemplate = `# Configuration file for the project
# Supports multiple environments (dev, prod) and settings for frontend, backend, database, logging, and API

environments:
  dev:
    debug: true
    logging:
      level: DEBUG
      file: logs/dev.log
    frontend:
      api_endpoint: http://localhost:3000/api
      timeout: 10
      max_retries: 3
    backend:
      database:
        host: localhost
        port: 5432
        name: dev_db
        user: dev_user
        password: dev_password
      api:
        base_url: http://localhost:8000
        key: dev_api_key
        timeout: 30
  prod:
    debug: false
    logging:
      level: INFO
      file: logs/prod.log
    frontend:
      api_endpoint: https://api.production.com
      timeout: 15
      max_retries: 5
    backend:
      database:
        host: prod.db.server.com
        port: 5432
        name: prod_db
        user: prod_user
        password: prod_password
      api:
        base_url: https://api.production.com
        key: prod_api_key
        timeout: 60
`

// loggingTemplate is the body of <side>/Logging/logging.py. The two sides
// differ only in the wording and the default log file name, substituted here.
const loggingTemplate = `import logging

def setup_logger(name, log_file='%[2]s', level=logging.INFO):
    """Configure and return a logger for %[1]s components.

    Args:
        name (str): Name of the logger.
        log_file (str): Path to the log file. Defaults to '%[2]s'.
        level: Logging level (e.g., logging.INFO, logging.ERROR).

    Returns:
        logging.Logger: Configured logger instance.
    """
    logger = logging.getLogger(name)
    if not logger.handlers:  # Avoid duplicate handlers
        logger.setLevel(level)
        handler = logging.FileHandler(log_file)
        formatter = logging.Formatter('%%(asctime)s - %%(name)s - %%(levelname)s - %%(message)s')
        handler.setFormatter(formatter)
        logger.addHandler(handler)
    return logger

def log_exception(logger, exception, message):
    """Log an exception with additional context.

    Args:
        logger (logging.Logger): Logger instance to use.
        exception (Exception): The exception to log.
        message (str): Additional message to include in the log.
    """
    logger.error(f"{message}: {str(exception)}", exc_info=True)
`

// loggingBody renders the logging template for one side.
func loggingBody(side string) string {
	switch side {
	case sideFront:
		return fmt.Sprintf(loggingTemplate, "frontend", "frontend.log")
	default:
		return fmt.Sprintf(loggingTemplate, "backend", "backend.log")
	}
}

// frontExceptionsBody is the body of Front/Exceptions/exceptions.py.
const frontExceptionsBody = `from datetime import datetime

class FrontendError(Exception):
    """Base exception for frontend-related errors."""
    pass

class FrontendValidationError(FrontendError):
    """Raised when user input validation fails in the frontend.

    Attributes:
        message (str): Explanation of the error.
        input_data: The invalid input that caused the error.
        timestamp (datetime): Time the error occurred.
    """
    def __init__(self, message, input_data=None):
        self.message = message
        self.input_data = input_data
        self.timestamp = datetime.now()
        super().__init__(self.message)

    def __str__(self):
        return f"[{self.timestamp}] {self.message} (Input: {self.input_data if self.input_data else 'None'})"

class FrontendRenderingError(FrontendError):
    """Raised when rendering fails in the frontend.

    Attributes:
        message (str): Explanation of the error.
        component (str): The component that failed to render.
    """
    def __init__(self, message, component=None):
        self.message = message
        self.component = component
        super().__init__(self.message)

    def __str__(self):
        return f"{self.message} (Component: {self.component if self.component else 'None'})"

class FrontendConnectionError(FrontendError):
    """Raised when a connection to an external service fails in the frontend.

    Attributes:
        message (str): Explanation of the error.
        service (str): The external service that failed.
    """
    def __init__(self, message, service=None):
        self.message = message
        self.service = service
        super().__init__(self.message)

    def __str__(self):
        return f"{self.message} (Service: {self.service if self.service else 'None'})"

class FrontendConfigurationError(FrontendError):
    """Raised when configuration settings are invalid in the frontend.

    Attributes:
        message (str): Explanation of the error.
        config_key (str): The invalid configuration key.
    """
    def __init__(self, message, config_key=None):
        self.message = message
        self.config_key = config_key
        super().__init__(self.message)

    def __str__(self):
        return f"{self.message} (Config Key: {self.config_key if self.config_key else 'None'})"
`

// backExceptionsBody is the body of Back/Exceptions/exceptions.py.
const backExceptionsBody = `from datetime import datetime

class BackendError(Exception):
    """Base exception for backend-related errors."""
    pass

class BackendDatabaseError(BackendError):
    """Raised when a database operation fails in the backend.

    Attributes:
        message (str): Explanation of the error.
        query (str): The database query that failed.
        timestamp (datetime): Time the error occurred.
    """
    def __init__(self, message, query=None):
        self.message = message
        self.query = query
        self.timestamp = datetime.now()
        super().__init__(self.message)

    def __str__(self):
        return f"[{self.timestamp}] {self.message} (Query: {self.query if self.query else 'None'})"

class BackendAPIError(BackendError):
    """Raised when an API call fails in the backend.

    Attributes:
        message (str): Explanation of the error.
        status_code (int): HTTP status code of the failed API call.
    """
    def __init__(self, message, status_code=None):
        self.message = message
        self.status_code = status_code
        super().__init__(self.message)

    def __str__(self):
        return f"{self.message} (Status Code: {self.status_code if self.status_code else 'None'})"

class BackendAuthenticationError(BackendError):
    """Raised when authentication fails in the backend.

    Attributes:
        message (str): Explanation of the error.
        user_id: The user ID associated with the failure.
    """
    def __init__(self, message, user_id=None):
        self.message = message
        self.user_id = user_id
        super().__init__(self.message)

    def __str__(self):
        return f"{self.message} (User ID: {self.user_id if self.user_id else 'None'})"

class BackendConfigurationError(BackendError):
    """Raised when configuration settings are invalid in the backend.

    Attributes:
        message (str): Explanation of the error.
        config_key (str): The invalid configuration key.
    """
    def __init__(self, message, config_key=None):
        self.message = message
        self.config_key = config_key
        super().__init__(self.message)

    def __str__(self):
        return f"{self.message} (Config Key: {self.config_key if self.config_key else 'None'})"
`

// exceptionsBody renders the exceptions template for one side.
func exceptionsBody(side string) string {
	if side == sideFront {
		return frontExceptionsBody
	}
	return backExceptionsBody
}
